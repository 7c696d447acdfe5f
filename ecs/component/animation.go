package component

import (
	"github.com/milk9111/actionrpg/common"
	rpg "github.com/milk9111/actionrpg/component"
)

// Animation wraps the locomotion animator with the root-motion delta it
// produced this frame.
type Animation struct {
	Animator *rpg.Animator
	DeltaPos common.Vec3
	DeltaYaw float64
	// Trigger names a one-shot clip (attack, cast) started this frame.
	Trigger string
}

var AnimationComponent = NewComponent[Animation]()
