package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/shared/leveldata"
)

type LevelData struct {
	Arena *leveldata.Arena
}

var Level = donburi.NewComponentType[LevelData]()
