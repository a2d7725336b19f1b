package world

import (
	"time"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
)

// Config holds the gameplay tunables of a world.
type Config struct {
	InitialHealth           int
	MaxHealth               int
	InvulnerabilityDuration time.Duration
	BlinkInterval           time.Duration

	PlayerSpeed   float64
	PlayerMargin  float64
	ShootCooldown time.Duration
	BombCooldown  time.Duration
	BulletSpeed   float64
	BombSpeed     float64
	MuzzleOffsetY float64

	Arsenal Arsenal // Starting weapon state and caps

	EnemyInterval  time.Duration
	GroundInterval time.Duration
	TankInterval   time.Duration
	ItemInterval   time.Duration
	SpawnMargin    float64
	ScrollSpeed    float64
	ItemSpin       float64
	EnableSnake    bool

	TankShootCooldown time.Duration
	TankShotSpeed     float64
	TankShotOffsetY   float64
	TankScore         int
	GroundCullMargin  float64

	ExplosionLifetime time.Duration
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() Config {
	return Config{
		InitialHealth:           config.InitialHealth,
		MaxHealth:               config.MaxHealth,
		InvulnerabilityDuration: config.InvulnerabilityDuration,
		BlinkInterval:           config.BlinkInterval,

		PlayerSpeed:   config.PlayerSpeed,
		PlayerMargin:  config.PlayerMargin,
		ShootCooldown: config.ShootCooldown,
		BombCooldown:  config.BombCooldown,
		BulletSpeed:   config.BulletSpeed,
		BombSpeed:     config.BombSpeed,
		MuzzleOffsetY: config.MuzzleOffsetY,

		Arsenal: Arsenal{
			BulletSize:         config.InitialBulletSize,
			BulletCount:        config.InitialBulletCount,
			SpeedMultiplier:    config.InitialSpeedMult,
			MaxBulletSize:      config.MaxBulletSize,
			MaxBulletCount:     config.MaxBulletCount,
			MaxSpeedMultiplier: config.MaxSpeedMultiplier,
			SpeedStep:          config.SpeedMultiplierStep,
		},

		EnemyInterval:  config.EnemySpawnInterval,
		GroundInterval: config.GroundSpawnInterval,
		TankInterval:   config.TankSpawnInterval,
		ItemInterval:   config.ItemSpawnInterval,
		SpawnMargin:    config.SpawnMargin,
		ScrollSpeed:    config.ScrollSpeed,
		ItemSpin:       config.ItemSpin,

		TankShootCooldown: config.TankShootCooldown,
		TankShotSpeed:     config.TankShotSpeed,
		TankShotOffsetY:   config.TankShotOffsetY,
		TankScore:         config.TankScore,
		GroundCullMargin:  config.GroundCullMargin,

		ExplosionLifetime: config.ExplosionLifetime,
	}
}

// enemyTypes returns the spawn table for this config.
func (c Config) enemyTypes() []object.EnemyType {
	if !c.EnableSnake {
		return object.SpawnableEnemies
	}
	return append(append([]object.EnemyType(nil), object.SpawnableEnemies...), object.EnemySnake)
}
