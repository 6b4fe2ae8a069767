package main

import "flag"

import "go.uber.org/zap"

import "github.com/Lycaon-Pictus/synthetic-control/datasets/syntheticcontrol"

func main() {
	configfile := flag.String("config", "", "optional yaml config file, overrides the other flags")
	root := flag.String("root", syntheticcontrol.DefaultRoot, "output root directory")
	url := flag.String("url", syntheticcontrol.DefaultURL, "dataset source url")
	seed := flag.Int64("seed", syntheticcontrol.DefaultSeed, "shuffle seed")
	train := flag.Int("train", syntheticcontrol.DefaultTrainCount, "number of training sequences")
	block := flag.Int("block", syntheticcontrol.DefaultBlockSize, "source lines per label block")
	workers := flag.Int("workers", 1, "concurrent file writers")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err.Error())
	}
	defer logger.Sync()
	log := logger.Sugar()

	var cfg syntheticcontrol.Config
	if *configfile != "" {
		cfg, err = syntheticcontrol.LoadConfig(*configfile)
		if err != nil {
			log.Fatalw("bad config", "err", err)
		}
	} else {
		cfg = syntheticcontrol.Config{
			RootDir:    *root,
			URL:        *url,
			TrainCount: *train,
			BlockSize:  *block,
			Seed:       *seed,
			Workers:    *workers,
		}
	}

	if err := syntheticcontrol.Prepare(cfg, log); err != nil {
		log.Fatalw("prepare failed", "err", err)
	}
}
