package core

// Color is a semantic colour role for a screen cell.
// The platform layer maps roles to concrete terminal colours per theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRunner
	ColorGround
	ColorObstacle
	ColorFlyer
	ColorHUD
	ColorMuted
	ColorAccent
)
