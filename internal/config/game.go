package config

import "time"

// Viewport defaults, in world units.
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// Player movement.
const (
	PlayerStartX        = 0.0
	PlayerStartY        = -100.0
	PlayerSpeed         = 5.0  // Units per tick
	PlayerMargin        = 20.0 // Distance kept from the viewport edge
	PlayerBank          = 0.3  // Target roll (radians) while moving sideways
	PlayerBankSmoothing = 0.1
	PlayerWobble        = 0.2 // Amplitude of the movement wobble
	PlayerWobbleFreq    = 0.01
)

// Health.
const (
	InitialHealth           = 5
	MaxHealth               = 7
	InvulnerabilityDuration = 2000 * time.Millisecond
	BlinkInterval           = 200 * time.Millisecond
)

// Weapons.
const (
	ShootCooldown      = 250 * time.Millisecond
	BombCooldown       = 1000 * time.Millisecond
	BulletSpeed        = 8.0 // Units per tick before the speed multiplier
	BombSpeed          = 10.0
	MuzzleOffsetY      = 20.0
	InitialBulletSize  = 3
	InitialBulletCount = 1
	InitialSpeedMult   = 1.0
)

// Power-up caps and steps.
const (
	MaxBulletSize       = 6
	MaxBulletCount      = 3
	MaxSpeedMultiplier  = 2.5
	SpeedMultiplierStep = 0.5
)

// Spawning.
const (
	EnemySpawnInterval  = 1000 * time.Millisecond
	GroundSpawnInterval = 2000 * time.Millisecond
	TankSpawnInterval   = 3000 * time.Millisecond
	ItemSpawnInterval   = 5000 * time.Millisecond
	ScrollSpeed         = 2.0 // Ground, tank and item descent per tick
	SpawnMargin         = 50.0
	ItemSpin            = 0.02
)

// Tanks.
const (
	TankShootCooldown = 2000 * time.Millisecond
	TankShotSpeed     = 5.0
	TankShotOffsetY   = 25.0
	TankScore         = 300
	GroundCullMargin  = 100.0
)

// Explosions.
const (
	ExplosionParticles = 20
	ExplosionLifetime  = 1500 * time.Millisecond
	ParticleMinSpeed   = 2.0
	ParticleSpeedRange = 2.0
	ParticleMaxSize    = 3.0
)

// Loop.
const (
	DefaultFPS  = 60
	IdleTimeout = 120 * time.Second // Remote sessions without input are closed
)
