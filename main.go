package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	depth := flag.Int("depth", 5, "Maximum recursion depth")
	threshold := flag.Float64("threshold", 0.001, "Carried-weight cutoff for recursion")
	samples := flag.Int("samples", 3, "Antialiasing grid size N (NxN samples, 0 disables)")
	aaThreshold := flag.Float64("aa-threshold", 0.1, "Neighbor color difference marking edge pixels")
	threads := flag.Int("threads", 0, "Worker count (0 = CPU count)")
	kd := flag.Bool("kd", true, "Build the kd-tree acceleration structure")
	kdDepth := flag.Int("kd-depth", 15, "kd-tree depth limit")
	kdLeafSize := flag.Int("kd-leaf-size", 10, "kd-tree leaf size threshold")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	aspectRatio := float64(*width) / float64(*height)
	selectedScene, err := scene.ByName(*sceneName, aspectRatio)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.Config{
		Depth:        *depth,
		Threshold:    *threshold,
		SuperSamples: *samples,
		AAThreshold:  *aaThreshold,
		Threads:      *threads,
		UseKdTree:    *kd,
		KdDepth:      *kdDepth,
		KdLeafSize:   *kdLeafSize,
	}

	raytracer := renderer.NewRayTracer(selectedScene, config, renderer.NewDefaultLogger())

	startTime := time.Now()
	raytracer.StartRender(*width, *height)
	raytracer.Wait()
	fmt.Printf("Primary pass completed in %v\n", time.Since(startTime))

	aaStart := time.Now()
	raytracer.StartAntialias()
	raytracer.Wait()
	stats := raytracer.Stats()
	fmt.Printf("Antialias pass completed in %v (%d boundary pixels)\n",
		time.Since(aaStart), stats.BoundaryPixels)

	filename := *output
	if filename == "" {
		outputDir := createOutputDir(*sceneName)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, raytracer.Image()); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Image saved to: %s\n", filename)
}

// createOutputDir returns the per-scene output directory path
func createOutputDir(sceneName string) string {
	return filepath.Join("output", sceneName)
}
