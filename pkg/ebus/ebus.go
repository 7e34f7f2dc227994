// Package ebus moves float readings from producers (buttons, serial
// sources) to listeners such as gauges. Repeated identical values for a
// topic are dropped while they are cached.
package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	TopicSpeed = "speed"

	DefaultTTL = 1 * time.Minute
)

var (
	ErrPublishFull = errors.New("publish channel full")
	ErrClosed      = errors.New("bus closed")
)

type Message struct {
	Topic string
	Data  float64
}

type Bus struct {
	subs      map[string][]chan float64
	subsMutex sync.Mutex

	inChan    chan Message
	unsubChan chan chan float64
	closeChan chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	cache *ttlcache.Cache[string, float64]

	aggregators     []*Aggregator
	aggregatorsLock sync.Mutex
}

func New(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b := &Bus{
		subs:      make(map[string][]chan float64),
		inChan:    make(chan Message, 100),
		unsubChan: make(chan chan float64, 100),
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](ttl),
		),
	}
	go b.run()
	return b
}

func (b *Bus) run() {
	defer close(b.done)
	for {
		select {
		case <-b.closeChan:
			b.subsMutex.Lock()
			for topic, subz := range b.subs {
				for _, sub := range subz {
					close(sub)
				}
				delete(b.subs, topic)
			}
			b.subsMutex.Unlock()
			return
		case msg := <-b.inChan:
			if v := b.cache.Get(msg.Topic); v != nil {
				if v.Value() == msg.Data {
					continue
				}
			}
			b.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)
			b.subsMutex.Lock()
			for _, sub := range b.subs[msg.Topic] {
				select {
				case sub <- msg.Data:
				default:
				}
			}
			b.subsMutex.Unlock()
			b.aggregatorsLock.Lock()
			for _, agg := range b.aggregators {
				agg.fun(b, msg.Topic, msg.Data)
			}
			b.aggregatorsLock.Unlock()
		case unsub := <-b.unsubChan:
			b.subsMutex.Lock()
		outer:
			for topic, subz := range b.subs {
				for i, sub := range subz {
					if sub == unsub {
						log.Println("Unsubscribe", topic)
						b.subs[topic] = append(subz[:i], subz[i+1:]...)
						close(unsub)
						if len(b.subs[topic]) == 0 {
							delete(b.subs, topic)
						}
						break outer
					}
				}
			}
			b.subsMutex.Unlock()
		}
	}
}

func (b *Bus) Publish(topic string, data float64) error {
	select {
	case <-b.closeChan:
		return ErrClosed
	default:
	}
	select {
	case b.inChan <- Message{Topic: topic, Data: data}:
		return nil
	default:
		return ErrPublishFull
	}
}

// Last returns the cached value of topic, if any.
func (b *Bus) Last(topic string) (float64, bool) {
	if itm := b.cache.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

// Subscribe returns a channel that receives every new value of topic,
// starting with the cached one. Slow readers miss values. On a closed bus
// the channel is returned already closed.
func (b *Bus) Subscribe(topic string) chan float64 {
	log.Println("Subscribe", topic)
	respChan := make(chan float64, 100)
	b.subsMutex.Lock()
	select {
	case <-b.closeChan:
		b.subsMutex.Unlock()
		close(respChan)
		return respChan
	default:
	}
	b.subs[topic] = append(b.subs[topic], respChan)
	b.subsMutex.Unlock()
	if itm := b.cache.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	return respChan
}

// SubscribeFunc calls f from a separate goroutine for every value of
// topic. The returned function unsubscribes.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	respChan := b.Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(respChan)
	}
}

func (b *Bus) Unsubscribe(channel chan float64) {
	select {
	case b.unsubChan <- channel:
	case <-b.done:
	}
}

// Close stops the bus and closes every subscriber channel.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.closeChan)
		<-b.done
		b.cache.DeleteAll()
	})
}
