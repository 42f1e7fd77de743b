// Package jitter добавляет случайную составляющую к интервалам ожидания между попытками,
// чтобы несколько реплик сервиса не переподключались к хранилищу синхронно.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Duration возвращает d, увеличенную на случайную долю в пределах [0, factor*d].
func Duration(d time.Duration, factor float64) time.Duration {
	if d <= 0 || factor <= 0 {
		return d
	}

	return d + time.Duration(rand.Float64()*factor*float64(d))
}

// ExponentialBackoff возвращает задержку перед попыткой attempt (нумерация с нуля):
// base*2^attempt, но не больше max, плюс джиттер.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt && backoff < max; i++ {
		backoff *= 2
	}
	if backoff > max {
		backoff = max
	}

	return Duration(backoff, factor)
}
