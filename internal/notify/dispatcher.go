package notify

import (
	"fmt"
	"sync"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// Dispatcher delivers notifications off the request path. Failures are
// logged and dropped; nothing upstream waits on delivery.
type Dispatcher struct {
	notifier Notifier
	logger   Logger
	queue    chan Message
	wg       sync.WaitGroup
	once     sync.Once
}

func NewDispatcher(notifier Notifier, logger Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		notifier: notifier,
		logger:   logger,
		queue:    make(chan Message, buffer),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for msg := range d.queue {
		if d.notifier == nil {
			d.logInfo(fmt.Sprintf("notifier not configured, dropping mail to %s", msg.To))
			continue
		}
		if err := d.notifier.Send(msg); err != nil {
			d.logError(fmt.Sprintf("notification send failed to=%s: %v", msg.To, err))
			continue
		}
		d.logInfo(fmt.Sprintf("notification sent to=%s", msg.To))
	}
}

// Enqueue never blocks the caller: when the queue is full the message is
// dropped and logged.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logError(fmt.Sprintf("notification queue full, dropping mail to %s", msg.To))
	}
}

// Close drains queued messages and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) logInfo(msg string) {
	if d.logger != nil {
		d.logger.Info(msg)
	}
}

func (d *Dispatcher) logError(msg string) {
	if d.logger != nil {
		d.logger.Error(msg)
	}
}
