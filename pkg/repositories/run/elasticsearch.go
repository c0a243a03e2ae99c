package run

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/anteup/pkg/entities"
)

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL             string
	Username        string
	Password        string
	IndexPrefix     string
	ArchivePath     string        // Path where archived run records will be stored
	RetentionPeriod time.Duration // How long to keep run records in Elasticsearch
	RotationPeriod  time.Duration // How often to rotate indices
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:             "http://localhost:9200",
		IndexPrefix:     "anteup",
		ArchivePath:     "./archives",
		RetentionPeriod: 90 * 24 * time.Hour, // 90 days
		RotationPeriod:  30 * 24 * time.Hour, // 30 days (monthly)
	}
}

// runIndexMapping defines the document layout shared by all run indices
const runIndexMapping = `{
	"mappings": {
		"properties": {
			"run_id": { "type": "keyword" },
			"seed": { "type": "long" },
			"won": { "type": "boolean" },
			"ante_reached": { "type": "integer" },
			"rounds_played": { "type": "integer" },
			"hands_played": { "type": "integer" },
			"best_hand_type": { "type": "keyword" },
			"best_hand_score": { "type": "long" },
			"final_money": { "type": "long" },
			"joker_types": { "type": "keyword" },
			"completed_at": { "type": "date" }
		}
	}
}`

// ElasticsearchRepository implements the Repository interface by delegating
// primary storage to a base repository and indexing run records in
// Elasticsearch for analytics queries
type ElasticsearchRepository struct {
	baseRepo        Repository
	client          *elasticsearch.Client
	config          *ElasticsearchConfig
	indexPrefix     string
	currentRunIndex string
	lastRotation    time.Time
}

// NewElasticsearchRepository creates a new Elasticsearch repository
func NewElasticsearchRepository(baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	// Fill in defaults for anything not provided
	if config.IndexPrefix == "" {
		config.IndexPrefix = "anteup"
	}
	if config.ArchivePath == "" {
		config.ArchivePath = "./archives"
	}
	if config.RetentionPeriod == 0 {
		config.RetentionPeriod = 90 * 24 * time.Hour
	}
	if config.RotationPeriod == 0 {
		config.RotationPeriod = 30 * 24 * time.Hour
	}

	repo := &ElasticsearchRepository{
		baseRepo:        baseRepo,
		client:          client,
		config:          config,
		indexPrefix:     config.IndexPrefix,
		currentRunIndex: config.IndexPrefix + "_runs",
		lastRotation:    time.Now(),
	}

	ctx := context.Background()
	if err := repo.initIndices(ctx); err != nil {
		return nil, fmt.Errorf("error initializing indices: %w", err)
	}

	return repo, nil
}

// initIndices creates the base run index if it doesn't exist
func (r *ElasticsearchRepository) initIndices(ctx context.Context) error {
	return r.createRunIndex(ctx, r.indexPrefix+"_runs")
}

// createRunIndex creates an index with the run mapping if it doesn't exist
func (r *ElasticsearchRepository) createRunIndex(ctx context.Context, name string) error {
	res, err := r.client.Indices.Exists([]string{name})
	if err != nil {
		return fmt.Errorf("error checking if index %s exists: %w", name, err)
	}
	if res.StatusCode != 404 {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: name,
		Body:  bytes.NewReader([]byte(runIndexMapping)),
	}

	createRes, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating index %s: %w", name, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("error creating index %s: %s", name, createRes.String())
	}

	return nil
}

// rotateIndices starts a fresh monthly index once the rotation period has passed.
// Searches cover every index under the prefix, so older documents stay visible.
func (r *ElasticsearchRepository) rotateIndices(ctx context.Context) error {
	if time.Since(r.lastRotation) < r.config.RotationPeriod {
		return nil
	}

	timeBasedIndex := r.indexPrefix + "_runs_" + time.Now().Format("2006-01")
	if err := r.createRunIndex(ctx, timeBasedIndex); err != nil {
		return err
	}

	r.currentRunIndex = timeBasedIndex
	r.lastRotation = time.Now()
	log.Printf("Rotated run index to %s", timeBasedIndex)

	return nil
}

// pruneOldIndices archives and deletes time-based indices older than the retention period
func (r *ElasticsearchRepository) pruneOldIndices(ctx context.Context) error {
	indices, err := r.GetIndices(ctx, r.indexPrefix+"_runs_*")
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-r.config.RetentionPeriod)
	for _, indexName := range indices {
		parts := strings.Split(indexName, "_")
		dateStr := parts[len(parts)-1]
		indexDate, err := time.Parse("2006-01", dateStr)
		if err != nil {
			log.Printf("Error parsing date from index name %s: %v", indexName, err)
			continue
		}

		if !indexDate.Before(cutoff) {
			continue
		}

		// Keep the index until archiving succeeds
		if err := r.archiveIndex(ctx, indexName); err != nil {
			log.Printf("Error archiving index %s: %v", indexName, err)
			continue
		}

		req := esapi.IndicesDeleteRequest{
			Index: []string{indexName},
		}

		res, err := req.Do(ctx, r.client)
		if err != nil {
			log.Printf("Error deleting index %s: %v", indexName, err)
			continue
		}
		res.Body.Close()

		if res.IsError() {
			log.Printf("Error deleting index %s: %s", indexName, res.String())
			continue
		}

		log.Printf("Pruned index %s (older than retention period of %v)", indexName, r.config.RetentionPeriod)
	}

	return nil
}

// scrollPage is one page of scroll results from a run index
type scrollPage struct {
	ScrollID string `json:"_scroll_id"`
	Hits     struct {
		Hits []struct {
			Source ESRunRecord `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func decodeScrollPage(body io.Reader) (*scrollPage, error) {
	var page scrollPage
	if err := json.NewDecoder(body).Decode(&page); err != nil {
		return nil, fmt.Errorf("error parsing scroll response: %w", err)
	}
	return &page, nil
}

// archiveIndex writes every run document in an index to compressed JSON files
func (r *ElasticsearchRepository) archiveIndex(ctx context.Context, indexName string) error {
	if err := os.MkdirAll(r.config.ArchivePath, 0755); err != nil {
		return fmt.Errorf("error creating archive directory: %w", err)
	}

	query := []byte(`{"query": {"match_all": {}}}`)
	scrollDuration := 1 * time.Minute
	req := esapi.SearchRequest{
		Index:  []string{indexName},
		Body:   bytes.NewReader(query),
		Scroll: scrollDuration,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error searching index %s: %w", indexName, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error searching index %s: %s", indexName, res.String())
	}

	page, err := decodeScrollPage(res.Body)
	if err != nil {
		return err
	}

	scrollID := page.ScrollID
	defer func() {
		clearReq := esapi.ClearScrollRequest{
			ScrollID: []string{scrollID},
		}
		clearRes, err := clearReq.Do(ctx, r.client)
		if err != nil {
			log.Printf("Error clearing scroll: %v", err)
			return
		}
		clearRes.Body.Close()
	}()

	for len(page.Hits.Hits) > 0 {
		for _, hit := range page.Hits.Hits {
			if err := r.archiveRunDocument(hit.Source); err != nil {
				log.Printf("Error archiving run %s: %v", hit.Source.RunID, err)
			}
		}

		scrollReq := esapi.ScrollRequest{
			ScrollID: scrollID,
			Scroll:   scrollDuration,
		}

		scrollRes, err := scrollReq.Do(ctx, r.client)
		if err != nil {
			return fmt.Errorf("error scrolling index %s: %w", indexName, err)
		}

		page, err = decodeScrollPage(scrollRes.Body)
		scrollRes.Body.Close()
		if err != nil {
			return err
		}
		scrollID = page.ScrollID
	}

	return nil
}

// archiveRunDocument writes one run record to a compressed JSON file
func (r *ElasticsearchRepository) archiveRunDocument(record ESRunRecord) error {
	fileName := filepath.Join(r.config.ArchivePath, fmt.Sprintf("%s.json.gz", record.RunID))

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("error creating archive file: %w", err)
	}
	defer file.Close()

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshaling run record: %w", err)
	}

	gzipWriter := gzip.NewWriter(file)
	if _, err := gzipWriter.Write(jsonData); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("error writing archive data: %w", err)
	}

	return gzipWriter.Close()
}

// ArchiveRunRecords writes run records to compressed JSON files in the archive directory
func (r *ElasticsearchRepository) ArchiveRunRecords(ctx context.Context, records []*entities.RunRecord) error {
	if err := os.MkdirAll(r.config.ArchivePath, 0755); err != nil {
		return fmt.Errorf("error creating archive directory: %w", err)
	}

	for _, record := range records {
		if err := r.archiveRunDocument(*RunRecordToESRunRecord(record)); err != nil {
			return err
		}
	}

	return nil
}

// IndexRunRecord indexes a run record in Elasticsearch
func (r *ElasticsearchRepository) IndexRunRecord(ctx context.Context, record *entities.RunRecord) error {
	if err := r.rotateIndices(ctx); err != nil {
		return fmt.Errorf("error rotating indices: %w", err)
	}

	jsonData, err := json.Marshal(RunRecordToESRunRecord(record))
	if err != nil {
		return fmt.Errorf("error marshaling run record: %w", err)
	}

	// Index by run ID so re-saving a run overwrites its document
	res, err := r.client.Index(
		r.currentRunIndex,
		bytes.NewReader(jsonData),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithDocumentID(record.RunID),
		r.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("error indexing run record: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing run record: %s", res.String())
	}

	return nil
}

// SaveRunRecord saves a run record to the base repository and indexes it in Elasticsearch
func (r *ElasticsearchRepository) SaveRunRecord(ctx context.Context, record *entities.RunRecord) error {
	if err := r.baseRepo.SaveRunRecord(ctx, record); err != nil {
		return fmt.Errorf("error saving run record to base repository: %w", err)
	}

	return r.IndexRunRecord(ctx, record)
}

// GetRunRecord retrieves a run record from the base repository
func (r *ElasticsearchRepository) GetRunRecord(ctx context.Context, runID string) (*entities.RunRecord, error) {
	return r.baseRepo.GetRunRecord(ctx, runID)
}

// ListRecentRuns retrieves the most recent runs from the base repository
func (r *ElasticsearchRepository) ListRecentRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	return r.baseRepo.ListRecentRuns(ctx, limit)
}

// SaveHandRecord stores a scored hand in the base repository
func (r *ElasticsearchRepository) SaveHandRecord(ctx context.Context, record *entities.HandRecord) error {
	return r.baseRepo.SaveHandRecord(ctx, record)
}

// GetHandRecords retrieves the scored hands for a run from the base repository
func (r *ElasticsearchRepository) GetHandRecords(ctx context.Context, runID string) ([]*entities.HandRecord, error) {
	return r.baseRepo.GetHandRecords(ctx, runID)
}

// GetRunStatistics aggregates statistics from the base repository
func (r *ElasticsearchRepository) GetRunStatistics(ctx context.Context) (*entities.RunStatistics, error) {
	return r.baseRepo.GetRunStatistics(ctx)
}

// ListRecentRunsFromES retrieves the most recent runs directly from Elasticsearch
func (r *ElasticsearchRepository) ListRecentRunsFromES(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	query := `{
		"query": { "match_all": {} },
		"sort": [
			{ "completed_at": { "order": "desc" } }
		]
	}`

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.indexPrefix+"_runs*"),
		r.client.Search.WithBody(strings.NewReader(query)),
		r.client.Search.WithSize(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("error searching for recent runs: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching for recent runs: %s", res.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source ESRunRecord `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing recent runs: %w", err)
	}

	records := make([]*entities.RunRecord, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		records = append(records, hit.Source.ToRunRecord())
	}

	return records, nil
}

// GetRunStatisticsFromES aggregates run statistics directly from Elasticsearch
func (r *ElasticsearchRepository) GetRunStatisticsFromES(ctx context.Context) (*entities.RunStatistics, error) {
	query := `{
		"size": 0,
		"aggs": {
			"wins": { "filter": { "term": { "won": true } } },
			"best_score": { "max": { "field": "best_hand_score" } },
			"avg_ante": { "avg": { "field": "ante_reached" } }
		}
	}`

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.indexPrefix+"_runs*"),
		r.client.Search.WithBody(strings.NewReader(query)),
		r.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("error searching for run statistics: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching for run statistics: %s", res.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
		} `json:"hits"`
		Aggregations struct {
			Wins struct {
				DocCount int `json:"doc_count"`
			} `json:"wins"`
			BestScore struct {
				Value float64 `json:"value"`
			} `json:"best_score"`
			AvgAnte struct {
				Value float64 `json:"value"`
			} `json:"avg_ante"`
		} `json:"aggregations"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error parsing run statistics: %w", err)
	}

	stats := &entities.RunStatistics{
		TotalRuns: result.Hits.Total.Value,
		Wins:      result.Aggregations.Wins.DocCount,
		BestScore: int64(result.Aggregations.BestScore.Value),
		AvgAnte:   result.Aggregations.AvgAnte.Value,
	}
	stats.Losses = stats.TotalRuns - stats.Wins

	return stats, nil
}

// RotateIndices checks if it's time to rotate the indices and creates a new time-based index if needed
func (r *ElasticsearchRepository) RotateIndices(ctx context.Context) error {
	return r.rotateIndices(ctx)
}

// PruneOldIndices archives and removes indices older than the retention period
func (r *ElasticsearchRepository) PruneOldIndices(ctx context.Context) error {
	return r.pruneOldIndices(ctx)
}

// GetIndices returns a sorted list of indices that match the given pattern
func (r *ElasticsearchRepository) GetIndices(ctx context.Context, pattern string) ([]string, error) {
	res, err := r.client.Indices.Get(
		[]string{pattern},
		r.client.Indices.Get.WithContext(ctx),
		r.client.Indices.Get.WithExpandWildcards("open"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get indices: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error getting indices: %s", res.String())
	}

	var indices map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&indices); err != nil {
		return nil, fmt.Errorf("error parsing indices response: %w", err)
	}

	indexNames := make([]string, 0, len(indices))
	for name := range indices {
		indexNames = append(indexNames, name)
	}
	sort.Strings(indexNames)

	return indexNames, nil
}

// GetConfig returns the repository configuration
func (r *ElasticsearchRepository) GetConfig() ElasticsearchConfig {
	return *r.config
}

// GetIndexPrefix returns the index prefix used by the repository
func (r *ElasticsearchRepository) GetIndexPrefix() string {
	return r.indexPrefix
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}
