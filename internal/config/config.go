// Package config provides YAML-based configuration loading for the
// voxel cube simulator.
package config

import (
	"fmt"
)

// CubeConfig contains all configuration for a cube session.
type CubeConfig struct {
	Cube      CubeSettings      `yaml:"cube"`
	Animation AnimationSettings `yaml:"animation"`
	Scramble  ScrambleSettings  `yaml:"scramble"`
}

// CubeSettings defines the puzzle itself.
type CubeSettings struct {
	Size int `yaml:"size"` // edge length, >= 2
}

// AnimationSettings defines how turns are animated.
type AnimationSettings struct {
	FramesPerTurn int     `yaml:"frames_per_turn"` // frames for one quarter-turn at speed 1
	Speed         float64 `yaml:"speed"`           // initial multiplier
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
}

// ScrambleSettings defines the default scramble request.
type ScrambleSettings struct {
	Moves int `yaml:"moves"`
}

// Validate checks the configuration for values the engine would reject.
func (c CubeConfig) Validate() error {
	if c.Cube.Size < 2 {
		return fmt.Errorf("config: cube size %d out of range (minimum 2)", c.Cube.Size)
	}
	if c.Animation.FramesPerTurn < 1 {
		return fmt.Errorf("config: frames_per_turn %d out of range (minimum 1)", c.Animation.FramesPerTurn)
	}
	if c.Animation.Speed <= 0 {
		return fmt.Errorf("config: speed %v must be positive", c.Animation.Speed)
	}
	if c.Animation.MinSpeed <= 0 || c.Animation.MaxSpeed < c.Animation.MinSpeed {
		return fmt.Errorf("config: speed range [%v, %v] is invalid",
			c.Animation.MinSpeed, c.Animation.MaxSpeed)
	}
	if c.Scramble.Moves < 1 {
		return fmt.Errorf("config: scramble moves %d out of range (minimum 1)", c.Scramble.Moves)
	}
	return nil
}
