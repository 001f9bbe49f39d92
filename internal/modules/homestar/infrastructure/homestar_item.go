package infrastructure

import (
	"github.com/df-mc/dragonfly/server/item"
)

// homeStarKey marks a stack as a HomeStar. Plain nether stars do not teleport.
const homeStarKey = "homestar"

// HomeStarName is the display name of the HomeStar item.
const HomeStarName = "HomeStar"

// NewHomeStar returns a stack of n HomeStars.
func NewHomeStar(n int) item.Stack {
	return item.NewStack(item.NetherStar{}, n).
		WithCustomName(HomeStarName).
		WithLore("Use to return to your bed.").
		WithValue(homeStarKey, true)
}

// IsHomeStar reports whether the stack is a HomeStar.
func IsHomeStar(stack item.Stack) bool {
	if stack.Empty() {
		return false
	}
	v, ok := stack.Value(homeStarKey)
	if !ok {
		return false
	}
	marked, _ := v.(bool)
	return marked
}
