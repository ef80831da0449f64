package main

import (
	"context"
	"crypto/rand"
	"flag"
	"io"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/smartseg/internal/docs"
	"github.com/cognicore/smartseg/internal/extract"
	"github.com/cognicore/smartseg/pkg/smartseg"
	"github.com/cognicore/smartseg/pkg/smartseg/config"
	"github.com/cognicore/smartseg/pkg/smartseg/store"
	"github.com/cognicore/smartseg/pkg/smartseg/store/sqlite"
	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file (optional)")
		dbPath     = flag.String("db", "", "Database path (overrides config)")
		dataPath   = flag.String("data", "", "Input JSONL file (required)")
	)
	flag.Parse()

	if *dataPath == "" {
		log.Fatal("--data required")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load configuration: ", err)
		}
		cfg = loaded
	}
	if *dbPath != "" {
		cfg.Indexer.DBPath = *dbPath
	}
	if cfg.Indexer.DBPath == "" {
		log.Fatal("--db or indexer.db_path required")
	}

	ctx := context.Background()

	analyzer, err := cfg.BuildAnalyzer()
	if err != nil {
		log.Fatal("Failed to build analyzer: ", err)
	}

	st, err := sqlite.Open(ctx, cfg.Indexer.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer st.Close()

	items, err := docs.LoadFromJSONL(*dataPath)
	if err != nil {
		log.Fatal("Failed to load documents: ", err)
	}

	log.Printf("Indexing %d documents into %s", len(items), cfg.Indexer.DBPath)

	// One worker, one session: each field reuses its pipeline across
	// all documents.
	session := smartseg.NewSession(analyzer)
	entropy := ulid.Monotonic(rand.Reader, 0)

	indexed := 0
	for _, item := range items {
		if err := indexItem(ctx, st, session, cfg.Indexer.Fields, item, entropy); err != nil {
			log.Printf("Failed to index %s: %v", item.URL, err)
			continue
		}
		indexed++
		if indexed%50 == 0 {
			log.Printf("Indexed %d/%d documents...", indexed, len(items))
		}
	}

	total, err := st.DocCount(ctx)
	if err != nil {
		log.Fatal("Failed to count documents: ", err)
	}
	log.Printf("Done: %d documents indexed this run, %d in store", indexed, total)
}

func indexItem(ctx context.Context, st store.Store, session *smartseg.Session,
	fields []string, item docs.Item, entropy io.Reader) error {

	// Items without an explicit title fall back to the HTML <title>.
	if item.Title == "" {
		item.Title = extract.Title(item.Body)
	}

	// Re-indexing keeps the existing id.
	doc, found, err := st.GetDocByURL(ctx, item.URL)
	if err != nil {
		return err
	}
	if !found {
		doc = store.Doc{ID: ulid.MustNew(ulid.Now(), entropy).String(), URL: item.URL}
	}
	doc.Title = item.Title
	doc.IndexedAt = time.Now()

	if err := st.UpsertDoc(ctx, doc); err != nil {
		return err
	}

	for _, field := range fields {
		text := fieldText(item, field)
		stream, err := session.Acquire(field, text)
		if err != nil {
			return err
		}

		postings, err := collectPostings(doc.ID, field, stream)
		if err != nil {
			return err
		}
		if err := st.ReplacePostings(ctx, doc.ID, field, postings); err != nil {
			return err
		}
	}
	return nil
}

func fieldText(item docs.Item, field string) string {
	switch field {
	case "title":
		return item.Title
	case "body":
		return extract.Text(item.Body)
	default:
		return ""
	}
}

func collectPostings(docID, field string, stream token.Stream) ([]store.Posting, error) {
	var postings []store.Posting
	pos := 0
	for {
		t, err := stream.Next()
		if err == io.EOF {
			return postings, nil
		}
		if err != nil {
			return nil, err
		}
		pos += t.PosInc
		postings = append(postings, store.Posting{
			DocID:    docID,
			Field:    field,
			Text:     t.Text,
			Position: pos - 1,
			Start:    t.Start,
			End:      t.End,
		})
	}
}
