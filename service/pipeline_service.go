package service

import (
	"context"
	"strings"
	"time"

	"github.com/tieubaoca/ocr-be/types"
)

// DocumentConverter runs one document through the OCR pipeline and returns
// the assembled DOCX bytes.
type DocumentConverter interface {
	Process(ctx context.Context, doc *types.InputDocument) ([]byte, error)
}

// JobNotifier receives every job state transition. Used to feed progress
// to websocket subscribers; may be nil.
type JobNotifier func(job *types.ConversionJob)

// PipelineService drives one invocation through
// splitting -> extracting (page by page, in order) -> assembling, and
// guarantees cleanup of the stored upload on every exit path.
type PipelineService struct {
	splitter  PageSplitter
	backend   OCRBackend
	assembler *DocxService
	files     *FileService
	prompt    string
	timeout   time.Duration
	notify    JobNotifier
}

func NewPipelineService(
	splitter PageSplitter,
	backend OCRBackend,
	assembler *DocxService,
	files *FileService,
	prompt string,
	timeout time.Duration,
) *PipelineService {
	return &PipelineService{
		splitter:  splitter,
		backend:   backend,
		assembler: assembler,
		files:     files,
		prompt:    prompt,
		timeout:   timeout,
	}
}

// SetNotifier registers an observer for job state transitions.
func (s *PipelineService) SetNotifier(notify JobNotifier) {
	s.notify = notify
}

// Process converts one uploaded document. Pages are OCRed strictly in
// order, one synchronous call each. A page that comes back empty is given
// the types.EmptyPageText sentinel; a backend failure aborts the whole
// invocation with no partial output. The stored upload is deleted before
// Process returns, whether it succeeds or fails.
func (s *PipelineService) Process(ctx context.Context, doc *types.InputDocument) ([]byte, error) {
	job := types.NewConversionJob(doc.Name)
	defer s.files.Remove(doc)

	s.transition(job, types.StateSplitting)
	pages, err := s.splitter.Split(doc)
	if err != nil {
		s.fail(job, err)
		return nil, err
	}
	job.TotalPages = len(pages)

	results := make([]types.PageResult, 0, len(pages))
	for i := range pages {
		page := pages[i]
		job.ProcessedPages = page.Number
		s.transition(job, types.StateExtracting)

		text, err := s.extractPage(ctx, page)
		if err != nil {
			s.fail(job, err)
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			text = types.EmptyPageText
		}
		results = append(results, types.PageResult{Number: page.Number, Text: text})

		// release the page buffer, it is no longer needed
		pages[i].Data = nil
	}

	s.transition(job, types.StateAssembling)
	output, err := s.assembler.Assemble(results)
	if err != nil {
		s.fail(job, err)
		return nil, err
	}

	s.transition(job, types.StateDone)
	return output, nil
}

func (s *PipelineService) extractPage(ctx context.Context, page types.PageImage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.backend.Extract(ctx, s.prompt, page)
}

func (s *PipelineService) transition(job *types.ConversionJob, state types.JobState) {
	job.State = state
	job.UpdatedAt = time.Now()
	if s.notify != nil {
		s.notify(job)
	}
}

func (s *PipelineService) fail(job *types.ConversionJob, err error) {
	job.ErrorMessage = err.Error()
	s.transition(job, types.StateFailed)
}
