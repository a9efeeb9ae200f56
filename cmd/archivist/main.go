// Copyright 2025 OpenCivic Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/opencivic/archivist"
	"github.com/opencivic/archivist/ai"
	"github.com/opencivic/archivist/config"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/feed"
	"github.com/opencivic/archivist/ingestion"
	"github.com/opencivic/archivist/knowledge"
	"github.com/opencivic/archivist/search"
)

func main() {
	app := &cli.App{
		Name:  "archivist",
		Usage: "Civic meeting archive with semantic search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Discover and process documents from the archive feed",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Re-ingest documents that are already completed",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum documents to process this run (0 = no cap)",
					},
					&cli.StringFlag{
						Name:  "archive-url",
						Usage: "Meeting archive listing page (overrides config)",
					},
					&cli.StringFlag{
						Name:  "captions-url",
						Usage: "Caption endpoint base URL (overrides config)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for document processing",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the archive",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum hits per collection",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "scope",
						Usage: "What to search: all, documents, knowledge",
						Value: "all",
					},
					&cli.TimestampFlag{
						Name:   "from",
						Usage:  "Only documents published on or after this date",
						Layout: "2006-01-02",
					},
					&cli.TimestampFlag{
						Name:   "to",
						Usage:  "Only documents published on or before this date",
						Layout: "2006-01-02",
					},
				},
			},
			{
				Name:  "knowledge",
				Usage: "Manage the curated knowledge base",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a knowledge entry",
						ArgsUsage: "<title>",
						Action:    knowledgeAddCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "file",
								Usage: "Read contents from file instead of stdin",
							},
							&cli.StringFlag{
								Name:  "category",
								Usage: "Entry category",
							},
							&cli.StringSliceFlag{
								Name:  "tag",
								Usage: "Entry tag (repeatable)",
							},
							&cli.StringFlag{
								Name:  "source",
								Usage: "Where the knowledge came from",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List knowledge entries, newest first",
						Action: knowledgeListCommand,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "all",
								Usage: "Include retired entries",
							},
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
							},
							&cli.IntFlag{
								Name: "offset",
							},
						},
					},
					{
						Name:      "rm",
						Usage:     "Retire a knowledge entry (or delete it for good)",
						ArgsUsage: "<id>",
						Action:    knowledgeRemoveCommand,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "hard",
								Usage: "Permanently delete instead of retiring",
							},
						},
					},
				},
			},
			{
				Name:  "versions",
				Usage: "Inspect and restore document version history",
				Subcommands: []*cli.Command{
					{
						Name:      "list",
						Usage:     "List version snapshots for a document",
						ArgsUsage: "<document-id>",
						Action:    versionsListCommand,
					},
					{
						Name:      "restore",
						Usage:     "Restore a document to a historical version",
						ArgsUsage: "<document-id> <version>",
						Action:    versionsRestoreCommand,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show archive statistics",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadSetup reads the config file and opens the archive.
func loadSetup(c *cli.Context) (*config.Config, *archivist.Archive, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.Storage.Path
	if override := c.String("db"); override != "" {
		dbPath = override
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.AI.EmbeddingHost),
		ai.WithSummarizerHost(cfg.AI.SummarizerHost),
		ai.WithEmbeddingModel(cfg.AI.EmbeddingModel),
		ai.WithSummarizerModel(cfg.AI.SummarizerModel),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	archive, err := archivist.Open(dbPath, archivist.WithAIConfig(aiConfig))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return cfg, archive, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	archiveURL := cfg.Feed.ArchiveURL
	if override := c.String("archive-url"); override != "" {
		archiveURL = override
	}
	if archiveURL == "" {
		return fmt.Errorf("archive URL is required (flag --archive-url or config feed.archive_url)")
	}

	captionsURL := c.String("captions-url")
	if captionsURL == "" {
		captionsURL = archiveURL
	}

	discovery, err := feed.NewHTMLFeed(feed.HTMLFeedConfig{
		ArchiveURL:   archiveURL,
		ItemSelector: cfg.Feed.ItemSelector,
		DateAttr:     cfg.Feed.DateAttr,
		RateLimit:    cfg.Feed.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create discovery feed: %w", err)
	}

	transcripts, err := feed.NewHTTPCaptionSource(feed.CaptionSourceConfig{
		BaseURL:   captionsURL,
		RateLimit: cfg.Feed.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create caption source: %w", err)
	}

	opts := []ingestion.Option{
		ingestion.WithMonitor(newProgressMonitor()),
		ingestion.WithRetry(cfg.Pipeline.MaxAttempts, ingestion.DefaultBaseDelay),
		ingestion.WithRateLimit(cfg.Pipeline.FetchRate),
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, ingestion.WithPoolSize(size))
	} else if cfg.Pipeline.PoolSize > 0 {
		opts = append(opts, ingestion.WithPoolSize(cfg.Pipeline.PoolSize))
	}

	pipeline, err := archive.NewPipeline(discovery, transcripts, opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	_, err = pipeline.Run(ctx, ingestion.RunOptions{
		Force: c.Bool("force"),
		Limit: c.Int("limit"),
	})
	if err != nil {
		return fmt.Errorf("ingestion run failed: %w", err)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	var scope search.Scope
	switch c.String("scope") {
	case "all":
		scope = search.ScopeAll
	case "documents":
		scope = search.ScopeDocuments
	case "knowledge":
		scope = search.ScopeKnowledge
	default:
		return fmt.Errorf("invalid scope %q: must be all, documents or knowledge", c.String("scope"))
	}

	_, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	searcher, err := archive.NewSearcher()
	if err != nil {
		return err
	}

	q := search.Query{
		Text:    query,
		Scope:   scope,
		MaxHits: c.Int("limit"),
	}
	if ts := c.Timestamp("from"); ts != nil {
		q.From = *ts
	}
	if ts := c.Timestamp("to"); ts != nil {
		q.To = *ts
	}

	results, err := searcher.Search(ctx, q)
	if err != nil {
		return err
	}

	heading := color.New(color.Bold, color.FgCyan)
	meta := color.New(color.FgHiBlack)

	if len(results.Chunks) > 0 {
		heading.Println("Meeting transcripts")
		for _, hit := range results.Chunks {
			meta.Printf("  %.2f  %s  %s  [%s - %s]\n",
				hit.Score,
				hit.SourceDate.Format("2006-01-02"),
				hit.SourceTitle,
				formatOffset(hit.Chunk.StartSeconds),
				formatOffset(hit.Chunk.EndSeconds))
			fmt.Printf("      %s\n", excerpt(hit.Chunk.Contents, 240))
		}
		fmt.Println()
	}

	if len(results.Entries) > 0 {
		heading.Println("Knowledge base")
		for _, hit := range results.Entries {
			meta.Printf("  %.2f  #%d  %s\n", hit.Score, hit.Entry.Id, hit.Entry.Title)
			fmt.Printf("      %s\n", excerpt(hit.Entry.Contents, 240))
		}
		fmt.Println()
	}

	if len(results.Chunks) == 0 && len(results.Entries) == 0 {
		fmt.Println("No results.")
	}
	return nil
}

func knowledgeAddCommand(c *cli.Context) error {
	ctx := context.Background()

	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if title == "" {
		return fmt.Errorf("title is required")
	}

	var contents []byte
	var err error
	if file := c.String("file"); file != "" {
		contents, err = os.ReadFile(file)
	} else {
		contents, err = os.ReadFile("/dev/stdin")
	}
	if err != nil {
		return fmt.Errorf("failed to read contents: %w", err)
	}

	_, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	service, err := archive.NewKnowledgeService()
	if err != nil {
		return err
	}

	entries, err := service.Create(ctx, knowledge.Submission{
		Title:    title,
		Contents: string(contents),
		Category: c.String("category"),
		Tags:     c.StringSlice("tag"),
		Source:   c.String("source"),
	})
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Printf("stored #%d  %s\n", entry.Id, entry.Title)
	}
	return nil
}

func knowledgeListCommand(c *cli.Context) error {
	ctx := context.Background()

	_, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	entries, err := archive.KnowledgeStore().ListEntries(ctx, c.Bool("all"), c.Int("limit"), c.Int("offset"))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		state := ""
		if !entry.Active() {
			state = "  (retired)"
		}
		fmt.Printf("#%-6d %s  %s%s\n", entry.Id, entry.CreatedAt.Format("2006-01-02"), entry.Title, state)
	}
	return nil
}

func knowledgeRemoveCommand(c *cli.Context) error {
	ctx := context.Background()

	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}

	_, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	service, err := archive.NewKnowledgeService()
	if err != nil {
		return err
	}

	var done bool
	if c.Bool("hard") {
		done, err = service.Delete(ctx, id)
	} else {
		done, err = service.Retire(ctx, id)
	}
	if err != nil {
		return err
	}
	if !done {
		fmt.Printf("entry #%d not found or already removed\n", id)
		return nil
	}
	fmt.Printf("removed #%d\n", id)
	return nil
}

func versionsListCommand(c *cli.Context) error {
	ctx := context.Background()

	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}

	_, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	doc, err := archive.DocumentStore().GetDocument(ctx, id)
	if err != nil {
		return err
	}
	versions, err := archive.DocumentStore().ListVersions(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (current version %d)\n", doc.Title, doc.Version)
	for _, v := range versions {
		marker := " "
		if v.Version == doc.Version {
			marker = "*"
		}
		fmt.Printf("%s v%-3d  %s  %d chunks\n", marker, v.Version, v.CreatedAt.Format("2006-01-02 15:04"), v.ChunkCount)
	}
	return nil
}

func versionsRestoreCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: versions restore <document-id> <version>")
	}
	id, err := parseID(c.Args().Get(0))
	if err != nil {
		return err
	}
	version, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid version %q", c.Args().Get(1))
	}

	_, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	doc, err := archive.DocumentStore().Restore(ctx, id, version)
	if err != nil {
		return err
	}

	fmt.Printf("restored %q to content of v%d (now v%d)\n", doc.Title, version, doc.Version)
	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	_, archive, err := loadSetup(c)
	if err != nil {
		return err
	}
	defer archive.Close()

	stats, err := archive.DocumentStore().Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("documents: %d\n", stats.TotalDocuments)
	for _, status := range []core.IngestStatus{
		core.StatusPending, core.StatusProcessing, core.StatusCompleted,
		core.StatusFailed, core.StatusNoCaptions,
	} {
		name := status.String()
		if n := stats.CountsByStatus[name]; n > 0 {
			fmt.Printf("  %-12s %d\n", name, n)
		}
	}
	if !stats.LatestDocument.IsZero() {
		fmt.Printf("latest publication: %s\n", stats.LatestDocument.Format("2006-01-02"))
	}
	return nil
}

// progressMonitor renders pipeline progress on stderr.
type progressMonitor struct {
	bar *progressbar.ProgressBar
}

var _ ingestion.Monitor = (*progressMonitor)(nil)

func newProgressMonitor() *progressMonitor {
	return &progressMonitor{}
}

func (m *progressMonitor) RunStarted(runId string, candidates int) {
	if candidates == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to process.")
		return
	}
	m.bar = progressbar.NewOptions(candidates,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("ingesting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (m *progressMonitor) DocumentStarted(_ *core.SourceDocument)         {}
func (m *progressMonitor) StepCompleted(_ *core.SourceDocument, _ string) {}

func (m *progressMonitor) DocumentCompleted(_ *core.SourceDocument) {
	if m.bar != nil {
		m.bar.Add(1)
	}
}

func (m *progressMonitor) DocumentSkipped(doc *core.SourceDocument, reason string) {
	if m.bar != nil {
		m.bar.Add(1)
	}
	fmt.Fprintf(os.Stderr, "skipped %q: %s\n", doc.Title, reason)
}

func (m *progressMonitor) DocumentFailed(doc *core.SourceDocument, err error) {
	if m.bar != nil {
		m.bar.Add(1)
	}
	color.New(color.FgRed).Fprintf(os.Stderr, "failed %q: %v\n", doc.Title, err)
}

func (m *progressMonitor) RunFinished(report *ingestion.BatchReport) {
	if m.bar != nil {
		m.bar.Finish()
	}
	elapsed := report.FinishedAt.Sub(report.StartedAt).Round(time.Second)
	color.New(color.Bold).Fprintf(os.Stderr,
		"run %s: %d discovered, %d completed, %d skipped, %d failed in %s\n",
		report.RunId, report.Discovered, report.Completed, report.Skipped, report.Failed, elapsed)
}

// parseID parses a numeric entry or document id from the command line.
func parseID(raw string) (core.ID, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if raw == "" {
		return 0, fmt.Errorf("id is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return core.ID(n), nil
}

// formatOffset renders a transcript offset as mm:ss.
func formatOffset(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// excerpt truncates text for one-line display.
func excerpt(text string, maxChars int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars] + "…"
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
