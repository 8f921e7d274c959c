package config

import (
	"fmt"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/chakai/pkg/tweet"
)

const layoutISO = "2006-01-02"

// Load resolves the template constants, starting from the production
// defaults and applying overrides from a .chakai config file (current
// directory, then home) or CHAKAI_* environment variables. Deterministic
// testing against arbitrary anchors goes through reference.date and
// reference.meeting.
func Load() (tweet.Config, error) {
	c := tweet.DefaultConfig()

	viper.SetDefault("hashtag", c.Hashtag)
	viper.SetDefault("event", c.EventName)
	viper.SetDefault("start", c.StartTime)
	viper.SetDefault("end", c.EndTime)
	viper.SetDefault("instrument", c.DefaultInstrument)
	viper.SetDefault("reference.meeting", c.ReferenceMeeting)
	viper.SetDefault("year", 0)

	viper.SetConfigName(".chakai") // .yaml is implicit
	viper.SetEnvPrefix("CHAKAI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("error reading config file: %w", err)
		}
	}

	c.Hashtag = viper.GetString("hashtag")
	c.EventName = viper.GetString("event")
	c.StartTime = viper.GetString("start")
	c.EndTime = viper.GetString("end")
	c.DefaultInstrument = viper.GetString("instrument")
	c.ReferenceMeeting = viper.GetInt("reference.meeting")
	c.DateYear = viper.GetInt("year")

	if s := viper.GetString("reference.date"); s != "" {
		t, err := time.Parse(layoutISO, s)
		if err != nil {
			return c, fmt.Errorf("invalid reference.date %q: %w", s, err)
		}
		c.ReferenceDate = t
	}

	return c, nil
}
