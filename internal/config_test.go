package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Load_Applies_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)
	req.NotEmpty(cfg.DBPath)
	req.Positive(cfg.SubscriberBuffer)
	req.Positive(cfg.EntitlementTimeout)
}

func Test_MaskRune_Requires_A_Single_Character(t *testing.T) {
	req := require.New(t)

	mask, err := Config{CensoredChar: "*"}.MaskRune()
	req.NoError(err)
	req.Equal('*', mask)

	_, err = Config{CensoredChar: "**"}.MaskRune()
	req.Error(err)
	_, err = Config{CensoredChar: ""}.MaskRune()
	req.Error(err)
}
