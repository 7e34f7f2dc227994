package speedo

import (
	"fyne.io/fyne/v2"
)

// Subscriber is the part of the value bus a gauge listens on.
type Subscriber interface {
	SubscribeFunc(topic string, f func(float64)) func()
}

// Bind feeds every value published on topic into the gauge on the Fyne
// goroutine. The returned function unsubscribes.
func (s *Speedo) Bind(bus Subscriber, topic string) func() {
	return bus.SubscribeFunc(topic, func(v float64) {
		fyne.Do(func() {
			s.OnValueChanged(v)
		})
	})
}
