// Package deferred modela invocaciones diferidas independientes del entorno:
// Debouncer (cancel-on-supersede) y Throttler (drop-while-active).
package deferred

import (
	"sync"
	"time"
)

// Debouncer ejecuta la última función recibida cuando pasa el tiempo de espera
// sin llamadas nuevas. Cada llamada cancela la pendiente.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	wait  time.Duration
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Cancel descarta la llamada pendiente, si hay una.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Immediate cancela lo pendiente y ejecuta fn en el goroutine actual.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}

// Throttler ejecuta fn como mucho una vez por ventana; las llamadas dentro de
// la ventana activa se descartan (no se encolan).
type Throttler struct {
	mu     sync.Mutex
	limit  time.Duration
	active bool
	timer  *time.Timer
}

func NewThrottler(limit time.Duration) *Throttler {
	return &Throttler{limit: limit}
}

// Do ejecuta fn sincrónicamente si no hay ventana activa. Devuelve false si la descartó.
func (t *Throttler) Do(fn func()) bool {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return false
	}
	t.active = true
	t.timer = time.AfterFunc(t.limit, t.release)
	t.mu.Unlock()

	fn()
	return true
}

// Reset cierra la ventana activa.
func (t *Throttler) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.active = false
}

func (t *Throttler) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = false
	t.timer = nil
}
