package psqlbuilder

import "github.com/Masterminds/squirrel"

// Пакет psqlbuilder - тонкая обёртка над squirrel с PostgreSQL-плейсхолдерами ($1, $2, ...)
// Все репозитории строят запросы через него, чтобы не указывать формат плейсхолдеров вручную

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT builder с долларовыми плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT builder с долларовыми плейсхолдерами
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE builder с долларовыми плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE builder с долларовыми плейсхолдерами
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
