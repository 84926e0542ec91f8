package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigName is the file looked up in the config directory.
const ConfigName = "reef-defense.json"

// EnvPrefix prefixes environment overrides, e.g. REEF_GAME_BOSSINTERVAL=4.
const EnvPrefix = "REEF"

// Settings is everything read from the config file and environment.
type Settings struct {
	LogLevel    string        `mapstructure:"logLevel"`
	Seed        int64         `mapstructure:"seed"`
	ShopCatalog string        `mapstructure:"shopCatalog"`
	Audio       AudioSettings `mapstructure:"audio"`
	Game        Tuning        `mapstructure:"game"`
}

type AudioSettings struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sampleRate"`
	Volume     float64 `mapstructure:"volume"`
}

// Tuning holds the wave and timer rules. Durations are written as strings
// such as "1s" or "500ms"; a bare JSON number is read as nanoseconds.
type Tuning struct {
	SpawnInterval     time.Duration `mapstructure:"spawnInterval"`
	BossInterval      int           `mapstructure:"bossInterval"`
	BaseQuota         int           `mapstructure:"baseQuota"`
	QuotaStep         int           `mapstructure:"quotaStep"`
	BossSpawnInterval time.Duration `mapstructure:"bossSpawnInterval"`
	BlinkDuration     time.Duration `mapstructure:"blinkDuration"`
	NudgeScale        float64       `mapstructure:"nudgeScale"`
	SpeedScalePerWave float64       `mapstructure:"speedScalePerWave"`
	ContactDamage     int           `mapstructure:"contactDamage"`
	ActorStartHealth  int           `mapstructure:"actorStartHealth"`
}

// DefaultTuning returns the rules the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		SpawnInterval:     1000 * time.Millisecond,
		BossInterval:      3,
		BaseQuota:         4,
		QuotaStep:         3,
		BossSpawnInterval: 5000 * time.Millisecond,
		BlinkDuration:     500 * time.Millisecond,
		NudgeScale:        0.25,
		SpeedScalePerWave: 0.1,
		ContactDamage:     1,
		ActorStartHealth:  3,
	}
}

// DefaultSettings returns Settings as if no file and no environment were present.
func DefaultSettings() Settings {
	return Settings{
		LogLevel: "info",
		Audio: AudioSettings{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.6,
		},
		Game: DefaultTuning(),
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("shopCatalog", d.ShopCatalog)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.sampleRate", d.Audio.SampleRate)
	v.SetDefault("audio.volume", d.Audio.Volume)

	v.SetDefault("game.spawnInterval", d.Game.SpawnInterval)
	v.SetDefault("game.bossInterval", d.Game.BossInterval)
	v.SetDefault("game.baseQuota", d.Game.BaseQuota)
	v.SetDefault("game.quotaStep", d.Game.QuotaStep)
	v.SetDefault("game.bossSpawnInterval", d.Game.BossSpawnInterval)
	v.SetDefault("game.blinkDuration", d.Game.BlinkDuration)
	v.SetDefault("game.nudgeScale", d.Game.NudgeScale)
	v.SetDefault("game.speedScalePerWave", d.Game.SpeedScalePerWave)
	v.SetDefault("game.contactDamage", d.Game.ContactDamage)
	v.SetDefault("game.actorStartHealth", d.Game.ActorStartHealth)
}

// Load reads ConfigName from configDir, falling back to defaults when the file
// does not exist. Environment variables override both.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(strings.TrimSuffix(ConfigName, ".json"))
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Game.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects tunings that would stall the wave director or turn
// damage and timers negative.
func (t Tuning) Validate() error {
	switch {
	case t.BossInterval < 1:
		return fmt.Errorf("game.bossInterval must be >= 1, got %d", t.BossInterval)
	case t.BaseQuota < 1:
		return fmt.Errorf("game.baseQuota must be >= 1, got %d", t.BaseQuota)
	case t.QuotaStep < 0:
		return fmt.Errorf("game.quotaStep must be >= 0, got %d", t.QuotaStep)
	case t.SpawnInterval <= 0 || t.BossSpawnInterval <= 0:
		return fmt.Errorf("spawn intervals must be positive")
	case t.ActorStartHealth < 1:
		return fmt.Errorf("game.actorStartHealth must be >= 1, got %d", t.ActorStartHealth)
	case t.ContactDamage < 0:
		return fmt.Errorf("game.contactDamage must be >= 0, got %d", t.ContactDamage)
	case t.BlinkDuration < 0:
		return fmt.Errorf("game.blinkDuration must be >= 0, got %s", t.BlinkDuration)
	case t.NudgeScale < 0:
		return fmt.Errorf("game.nudgeScale must be >= 0, got %g", t.NudgeScale)
	}
	return nil
}
