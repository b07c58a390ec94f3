package kzg

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/fx"

	"github.com/0glabs/0g-da-light/kzg"
)

var log = logging.Logger("module/kzg")

func ConstructModule(cfg *Config) fx.Option {
	return fx.Module(
		"kzg",
		fx.Supply(*cfg),
		fx.Error(cfg.Validate()),
		fx.Provide(publicParams),
	)
}

func publicParams(cfg Config) (*kzg.PublicParams, error) {
	if cfg.SRSPath != "" {
		f, err := os.Open(cfg.SRSPath)
		if err != nil {
			return nil, fmt.Errorf("kzg: opening srs file: %w", err)
		}
		defer f.Close()

		pp, err := kzg.ReadPublicParams(f)
		if err != nil {
			return nil, err
		}
		log.Infow("loaded public params", "path", cfg.SRSPath, "max_cols", pp.MaxCols())
		return pp, nil
	}

	log.Warnw("deriving INSECURE public params from a seed, commitments can be forged by anyone knowing it",
		"max_cols", cfg.MaxCols)
	return kzg.NewInsecurePublicParams([]byte(cfg.InsecureSeed), cfg.MaxCols)
}
