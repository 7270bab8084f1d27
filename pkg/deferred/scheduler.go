package deferred

import (
	"sync"
	"time"
)

// Scheduler планировщик отложенных одноразовых задач с возможностью отмены
// Задачи идентифицируются строковым ключом; повторное планирование по тому же
// ключу отменяет предыдущую задачу. Проверка актуальности задачи - обязанность
// самой задачи в момент срабатывания, а не в момент планирования.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewScheduler создает новый планировщик
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
	}
}

// Schedule планирует выполнение fn через delay
// Уже запланированная задача с тем же ключом отменяется и заменяется новой
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
	}

	s.timers[key] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()

		fn()
	})
}

// Cancel отменяет запланированную задачу
// Возвращает true, если задача была запланирована и ещё не выполнена
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[key]
	if !ok {
		return false
	}

	delete(s.timers, key)
	return timer.Stop()
}

// Pending возвращает количество запланированных задач
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop отменяет все запланированные задачи и запрещает планирование новых
// Вызывается при graceful shutdown
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}
