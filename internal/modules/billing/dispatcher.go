package billing

import (
	"context"
	"log"
	"time"

	"roomstay/internal/modules/booking"
)

// BillCreator is what the dispatcher needs from the client.
type BillCreator interface {
	CreateBill(ctx context.Context, bill Bill) error
}

// Dispatcher decouples booking creation from bill delivery. Send queues the
// invoice and returns immediately; a single worker drains the queue in the
// background. A full queue drops the invoice with a log line, matching the
// fire-and-forget contract.
type Dispatcher struct {
	client BillCreator
	queue  chan booking.Invoice
	done   chan struct{}
}

func NewDispatcher(client BillCreator, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		client: client,
		queue:  make(chan booking.Invoice, queueSize),
		done:   make(chan struct{}),
	}
}

// Start launches the delivery worker. Call Stop to drain and shut down.
func (d *Dispatcher) Start() {
	go d.run()
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for inv := range d.queue {
		d.deliver(inv)
	}
}

func (d *Dispatcher) deliver(inv booking.Invoice) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := d.client.CreateBill(ctx, Bill{
		CustomerID:         inv.CustomerID.String(),
		ServiceReferenceID: inv.BookingID,
		Description:        inv.Description,
		Amount:             inv.Amount,
	})
	if err != nil {
		log.Printf("billing booking=%s delivery failed: %v", inv.BookingID, err)
	}
}

// Send implements booking.InvoiceSender.
func (d *Dispatcher) Send(inv booking.Invoice) {
	select {
	case d.queue <- inv:
	default:
		log.Printf("billing booking=%s queue full, invoice dropped", inv.BookingID)
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	close(d.queue)
	<-d.done
}
