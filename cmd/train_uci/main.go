package main

import "flag"
import "fmt"

import "go.uber.org/zap"

import "github.com/Lycaon-Pictus/synthetic-control/datasets/syntheticcontrol"
import "github.com/Lycaon-Pictus/synthetic-control/knn"
import "github.com/Lycaon-Pictus/synthetic-control/seqfiles"

func main() {
	configfile := flag.String("config", "", "optional yaml config file, overrides the dataset flags")
	root := flag.String("root", syntheticcontrol.DefaultRoot, "dataset root directory")
	url := flag.String("url", syntheticcontrol.DefaultURL, "dataset source url")
	seed := flag.Int64("seed", syntheticcontrol.DefaultSeed, "shuffle seed")
	train := flag.Int("train", syntheticcontrol.DefaultTrainCount, "number of training sequences")
	block := flag.Int("block", syntheticcontrol.DefaultBlockSize, "source lines per label block")
	workers := flag.Int("workers", 1, "concurrent file writers")
	classes := flag.Int("classes", syntheticcontrol.NumClasses, "number of classes")
	window := flag.Int("window", 10, "dtw warping window, 0 for unconstrained")
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

	lay := syntheticcontrol.NewLayout(cfg.RootDir)
	trainReader, err := seqfiles.NewReader(lay.TrainFeatures, lay.TrainLabels)
	if err != nil {
		log.Fatalw("open train partition", "err", err)
	}
	testReader, err := seqfiles.NewReader(lay.TestFeatures, lay.TestLabels)
	if err != nil {
		log.Fatalw("open test partition", "err", err)
	}
	log.Infow("opened partitions", "train", trainReader.Len(), "test", testReader.Len())

	var norm seqfiles.Standardizer
	if err := norm.Fit(trainReader); err != nil {
		log.Fatalw("fit normalizer", "err", err)
	}
	log.Infow("fitted normalizer", "mean", norm.Mean, "std", norm.Std)

	model := knn.New(*classes, *window)
	model.Norm = &norm
	if err := model.Fit(trainReader); err != nil {
		log.Fatalw("fit model", "err", err)
	}

	eval, err := model.Evaluate(testReader)
	if err != nil {
		log.Fatalw("evaluate model", "err", err)
	}
	fmt.Print(eval.Stats())
}
