package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"entropy/internal/config"
	"entropy/internal/core"
	"entropy/internal/record"
	_ "entropy/internal/sims/entropy"
)

type values interface {
	Values() []float64
}

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "config file (.json, .yaml)")
	simName := flag.String("sim", "", "simulation to run (default: from the config variant)")
	seed := flag.Int64("seed", 0, "seed for the recorded run (default: config seed)")
	steps := flag.Int("steps", 300, "steps to simulate per run")
	fps := flag.Int("fps", 30, "video frame rate")
	scale := flag.Int("scale", 0, "pixel scale multiplier (default: config size_factor)")
	outDir := flag.String("out", "out", "output directory")
	bins := flag.Int("bins", 40, "histogram bins for the final energy distribution")
	noVideo := flag.Bool("no-video", false, "skip the MJPEG export")
	runs := flag.Int("runs", 1, "independent seeds to simulate for the drift report")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs for the drift report")
	flag.Parse()

	file, err := config.LoadOptional(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		file.Seed = *seed
	}
	if *scale > 0 {
		file.SizeFactor = *scale
	}
	if err := file.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	name := *simName
	if name == "" {
		if name, err = file.SimName(); err != nil {
			log.Fatal(err)
		}
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	params := file.Map()
	sim, err := core.New(name, params)
	if err != nil {
		log.Fatal(err)
	}

	var video *record.Video
	if !*noVideo {
		paletted, ok := sim.(core.Paletted)
		if !ok {
			log.Fatalf("sim %q has no palette to render", name)
		}
		size := sim.Size()
		path := filepath.Join(*outDir, name+".avi")
		video, err = record.NewVideo(path, size.W, size.H, file.SizeFactor, *fps, paletted.Palette())
		if err != nil {
			log.Fatal(err)
		}
	}

	start := time.Now()
	res, err := record.Run(sim, file.Seed, *steps, video)
	if err != nil {
		log.Fatal(err)
	}
	if video != nil {
		if err := video.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d frames to %s", video.Frames(), filepath.Join(*outDir, name+".avi"))
	}
	log.Printf("%s: %d steps in %s", name, res.Steps, time.Since(start).Round(time.Millisecond))

	if err := writeChart(filepath.Join(*outDir, name+"_energy.png"), name, res.Energies); err != nil {
		log.Fatal(err)
	}
	if v, ok := sim.(values); ok {
		path := filepath.Join(*outDir, name+"_histogram.png")
		if err := record.SaveHistogram(path, fmt.Sprintf("%s after %d steps", name, res.Steps), v.Values(), *bins); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(record.Trace(res.Energies, "Total energy per step"))
	fmt.Printf("\nInitial %.9g  final %.9g  max drift %.3e (relative %.3e)\n",
		res.Initial, res.Final, res.MaxDrift, res.RelativeDrift())

	if *runs > 1 {
		driftReport(name, params, file.Seed, *runs, *workers, *steps)
	}
}

func writeChart(path, name string, energies []float64) error {
	if len(energies) < 2 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := record.WriteEnergyChart(f, name+" total energy", energies); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func driftReport(name string, params map[string]string, baseSeed int64, runs, workers, steps int) {
	if workers < 1 {
		workers = 1
	}
	fmt.Printf("\nSimulating %d seeds (%d workers, %d steps)\n", runs, workers, steps)

	jobs := make(chan int64)
	results := make(chan record.Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runSeed(name, params, seed, steps)
				if err != nil {
					log.Printf("seed %d: %v", seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < runs; i++ {
			jobs <- baseSeed + int64(i)
		}
		close(jobs)
	}()

	var all []record.Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].RelativeDrift() > all[j].RelativeDrift() })

	for i, res := range all {
		fmt.Printf("%3d) seed=%d initial=%.9g final=%.9g maxDrift=%.3e relative=%.3e\n",
			i+1, res.Seed, res.Initial, res.Final, res.MaxDrift, res.RelativeDrift())
	}
}

func runSeed(name string, params map[string]string, seed int64, steps int) (record.Result, error) {
	local := make(map[string]string, len(params))
	for k, v := range params {
		local[k] = v
	}
	local["seed"] = strconv.FormatInt(seed, 10)
	sim, err := core.New(name, local)
	if err != nil {
		return record.Result{}, err
	}
	return record.Run(sim, seed, steps, nil)
}
