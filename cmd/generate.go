package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tanmay/physiq/internal/config"
	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/llm"
	"github.com/tanmay/physiq/internal/logging"
	"github.com/tanmay/physiq/internal/objectstore"
	"github.com/tanmay/physiq/internal/questiongen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question bank from diagram images in S3",
	Long: `Generate lists diagram images in the configured S3 bucket, assigns each
a difficulty from a randomly chosen distribution, asks the LLM for one
question per diagram and writes the bank as a JSON file.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("s3-bucket", "", "S3 bucket holding the diagrams (overrides S3_BUCKET)")
	generateCmd.Flags().String("s3-prefix", "", "Key prefix to list under (overrides S3_PREFIX)")
	generateCmd.Flags().StringP("output", "o", "questions.json", "Output bank file")
	generateCmd.Flags().Int("max-images", 0, "Limit the number of images processed (0 = all)")
	generateCmd.Flags().Bool("no-randomize", false, "Disable distribution and prompt randomization")
	generateCmd.Flags().Uint64("seed", 0, "Random seed (0 = nondeterministic)")
	generateCmd.Flags().Bool("no-stats", false, "Skip the difficulty summary after generation")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}
	log, closeLog, err := logging.Setup(logPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	bucket := cfg.S3Bucket
	if b, _ := cmd.Flags().GetString("s3-bucket"); b != "" {
		bucket = b
	}
	prefix := cfg.S3Prefix
	if p, _ := cmd.Flags().GetString("s3-prefix"); p != "" {
		prefix = p
	}
	output, _ := cmd.Flags().GetString("output")
	maxImages, _ := cmd.Flags().GetInt("max-images")
	noRandomize, _ := cmd.Flags().GetBool("no-randomize")
	seed, _ := cmd.Flags().GetUint64("seed")
	noStats, _ := cmd.Flags().GetBool("no-stats")

	var rng *rand.Rand
	if !noRandomize {
		if seed != 0 {
			rng = rand.New(rand.NewPCG(seed, seed))
		} else {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	objStore, err := objectstore.NewS3Store(ctx, objectstore.S3Config{
		Bucket:          bucket,
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return fmt.Errorf("connect to S3: %w", err)
	}

	keys, err := objStore.ListImages(ctx, prefix)
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}
	if len(keys) == 0 {
		return fmt.Errorf("no images found under s3://%s/%s", bucket, prefix)
	}
	if maxImages > 0 && len(keys) > maxImages {
		keys = keys[:maxImages]
	}
	fmt.Printf("Found %d diagram(s) under s3://%s/%s\n", len(keys), bucket, prefix)

	dist := questiongen.PickDistribution(rng)
	assignments := questiongen.AssignDifficulties(len(keys), dist, rng)

	records := generateBank(ctx, objStore, provider, keys, assignments, rng, log)
	if len(records) == 0 {
		return fmt.Errorf("generation failed for all %d images", len(keys))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Printf("Wrote %d question(s) to %s\n", len(records), output)

	if !noStats {
		printStats(records)
	}
	return nil
}

// generateBank produces one record per image. Failures are logged and
// skipped so a single bad diagram never aborts the run.
func generateBank(ctx context.Context, objStore objectstore.Store, provider llm.Provider, keys []string, assignments []exam.Difficulty, rng *rand.Rand, log zerolog.Logger) []questiongen.Record {
	gen := questiongen.NewLLMGenerator(provider, rng, log)

	records := make([]questiongen.Record, 0, len(keys))
	for i, key := range keys {
		filename := path.Base(key)
		fmt.Printf("  [%d/%d] %s (%s)... ", i+1, len(keys), filename, assignments[i])

		data, mimeType, err := objStore.Get(ctx, key)
		if err != nil {
			fmt.Println("download failed")
			log.Warn().Str("key", key).Err(err).Msg("skipping undownloadable image")
			continue
		}

		q, err := gen.Generate(ctx, questiongen.Input{
			Key:        key,
			Filename:   filename,
			ImageURL:   objStore.URL(key),
			Image:      llm.Image{MIMEType: mimeType, Data: data},
			Difficulty: assignments[i],
		})
		if err != nil {
			fmt.Println("generation failed")
			log.Warn().Str("key", key).Err(err).Msg("skipping failed generation")
			continue
		}

		fmt.Println("ok")
		records = append(records, questiongen.RecordFromQuestion(*q))
	}
	return records
}

// printStats prints the per-difficulty breakdown of the generated bank.
func printStats(records []questiongen.Record) {
	counts := make(map[exam.Difficulty]int)
	for _, r := range records {
		counts[exam.Difficulty(r.DifficultyLevel)]++
	}

	fmt.Println("\nDifficulty breakdown:")
	for _, d := range exam.Difficulties {
		n := counts[d]
		pct := float64(n) / float64(len(records)) * 100
		fmt.Printf("  %-7s %3d  (%.1f%%)\n", d, n, pct)
	}
}
