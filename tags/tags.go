package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for the collision space
const (
	ResolvWall     = "wall"
	ResolvPlatform = "platform"
)
