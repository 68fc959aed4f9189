package audio

import (
	"sync"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// dispatcher delivers events in order on one goroutine. push never blocks, so
// it is safe to call while holding the engine lock, and callbacks may call back
// into the engine.
type dispatcher struct {
	mu       sync.Mutex
	queue    []model.PlaybackEvent
	callback func(model.PlaybackEvent)
	wake     chan struct{}
	quit     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func newDispatcher() *dispatcher {
	d := &dispatcher{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *dispatcher) setCallback(callback func(model.PlaybackEvent)) {
	d.mu.Lock()
	d.callback = callback
	d.mu.Unlock()
}

func (d *dispatcher) push(ev model.PlaybackEvent) {
	d.mu.Lock()
	d.queue = append(d.queue, ev)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *dispatcher) run() {
	defer close(d.done)
	for {
		select {
		case <-d.wake:
			d.drain()
		case <-d.quit:
			d.drain()
			return
		}
	}
}

func (d *dispatcher) drain() {
	for {
		d.mu.Lock()
		batch := d.queue
		d.queue = nil
		callback := d.callback
		d.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		if callback == nil {
			continue
		}
		for _, ev := range batch {
			callback(ev)
		}
	}
}

// close flushes pending events and stops the goroutine
func (d *dispatcher) close() {
	d.once.Do(func() {
		close(d.quit)
		<-d.done
	})
}
