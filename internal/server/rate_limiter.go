package server

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/metrics"
)

const (
	staleWindowAfter = time.Hour
	sweepEvery       = 30 * time.Minute
)

// window счетчик запросов клиента в текущем окне
type window struct {
	opened time.Time
	used   int
}

// RateLimiter пропускает не более limit запросов с одного IP за окно period.
// Окно клиента открывается его первым запросом.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows map[string]*window
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

// NewRateLimiter создает ограничитель и запускает фоновую очистку старых окон
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.done:
			return
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-staleWindowAfter)
	for ip, w := range rl.windows {
		if w.opened.Before(cutoff) {
			delete(rl.windows, ip)
		}
	}
}

// Stop останавливает фоновую очистку; повторный вызов безопасен
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

// Allow учитывает запрос клиента и сообщает, укладывается ли он в лимит
func (rl *RateLimiter) Allow(ip string) bool {
	ok, _ := rl.reserve(ip)
	return ok
}

// reserve возвращает решение и время до открытия следующего окна при отказе
func (rl *RateLimiter) reserve(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[ip]
	if !ok || now.Sub(w.opened) >= rl.period {
		w = &window{opened: now}
		rl.windows[ip] = w
	}

	if w.used >= rl.limit {
		return false, w.opened.Add(rl.period).Sub(now)
	}
	w.used++
	return true, 0
}

// RateLimitMiddleware отклоняет запросы сверх лимита с кодом 429 и заголовком Retry-After
func RateLimitMiddleware(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ok, wait := limiter.reserve(ip); !ok {
			metrics.RateLimited.Inc()
			seconds := int(wait.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
