package ebus

type AggregatorFunc func(b *Bus, name string, value float64)

type Aggregator struct {
	fun AggregatorFunc
}

func (b *Bus) RegisterAggregator(aggs ...*Aggregator) {
	b.aggregatorsLock.Lock()
	defer b.aggregatorsLock.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range b.aggregators {
			if existing == agg {
				continue outer
			}
		}
		b.aggregators = append(b.aggregators, agg)
	}
}

// ScaleAggregator republishes input multiplied by factor on output, for
// example m/s from a GPS as km/h.
func ScaleAggregator(input, output string, factor float64) *Aggregator {
	return &Aggregator{
		fun: func(b *Bus, name string, value float64) {
			if name == input {
				b.Publish(output, value*factor)
			}
		},
	}
}

// OffsetAggregator republishes input plus offset on output.
func OffsetAggregator(input, output string, offset float64) *Aggregator {
	return &Aggregator{
		fun: func(b *Bus, name string, value float64) {
			if name == input {
				b.Publish(output, value+offset)
			}
		},
	}
}
