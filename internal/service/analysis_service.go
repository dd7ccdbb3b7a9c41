package service

import (
	"fmt"
	"log/slog"

	"opinions/internal/documents"
	"opinions/internal/domain"
	"opinions/internal/store"
	"opinions/internal/survey"
)

// Dataset is the fully loaded, labelled survey.
type Dataset struct {
	Respondents []domain.Respondent
	Stats       map[string]domain.DocumentStats
}

// StatsFor returns the document statistics of a respondent.
func (d *Dataset) StatsFor(name string) (domain.DocumentStats, bool) {
	s, ok := d.Stats[name]
	return s, ok
}

// AnalysisService loads respondents and their documents.
type AnalysisService struct {
	collector *documents.Collector
	store     store.Storage
	logger    *slog.Logger
}

func NewAnalysisService(collector *documents.Collector, store store.Storage, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{collector: collector, store: store, logger: logger}
}

// Load parses the coordinate file, collects a document per name in the name
// file and labels the respondents. Any failure aborts the load.
func (s *AnalysisService) Load(coordinatesPath, namesPath string) (*Dataset, error) {
	respondents, err := survey.LoadRespondents(coordinatesPath)
	if err != nil {
		return nil, fmt.Errorf("load respondents: %w", err)
	}
	if len(respondents) == 0 {
		return nil, fmt.Errorf("load respondents: %s contains no respondents", coordinatesPath)
	}
	if err := s.store.Init(); err != nil {
		return nil, err
	}
	if err := s.store.Put(respondents); err != nil {
		return nil, err
	}
	s.logger.Info("loaded respondents", "path", coordinatesPath, "count", len(respondents))

	names, err := survey.LoadNames(namesPath)
	if err != nil {
		return nil, fmt.Errorf("load names: %w", err)
	}
	stats, err := s.collector.CollectAll(names)
	if err != nil {
		return nil, fmt.Errorf("collect documents: %w", err)
	}
	if err := documents.Attach(s.store, stats); err != nil {
		return nil, err
	}

	ds := &Dataset{Respondents: s.store.All(), Stats: make(map[string]domain.DocumentStats, len(stats))}
	for _, st := range stats {
		if _, ok := ds.Stats[st.Name]; !ok {
			ds.Stats[st.Name] = st
		}
		s.logger.Debug("document stats", "name", st.Name, "words", st.WordCount, "i", st.ICount)
	}
	return ds, nil
}
