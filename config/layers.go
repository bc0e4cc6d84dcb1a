package config

import "github.com/yohamta/donburi/ecs"

// ECS layers, in draw order
const (
	Default ecs.LayerID = iota
	LayerHUD
)
