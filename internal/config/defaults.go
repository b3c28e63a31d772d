package config

import (
	_ "embed"
)

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultCubeConfig returns the default cube configuration.
func DefaultCubeConfig() CubeConfig {
	return CubeConfig{
		Cube: CubeSettings{
			Size: 20,
		},
		Animation: AnimationSettings{
			FramesPerTurn: 12,
			Speed:         1.0,
			MinSpeed:      0.25,
			MaxSpeed:      4.0,
		},
		Scramble: ScrambleSettings{
			Moves: 30,
		},
	}
}
