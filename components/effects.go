package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData drives the full-screen impact flash. Alpha follows the
// tween; a nil tween means no flash is active.
type FlashData struct {
	Tween *gween.Tween
	Alpha float32
}

var Flash = donburi.NewComponentType[FlashData]()
