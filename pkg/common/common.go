package common

import "math"

const (
	PiDiv180  = math.Pi / 180
	OneHalf   = 1.0 / 2.0 // 0.5
	OneFourth = 1.0 / 4.0 // 0.25
)
