package usecase

import (
	"context"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/upload"
)

// Upload starts a new attempt on the board and drives it through the upload
// and report calls. It returns the board's snapshot once this attempt is
// settled; if a newer upload started meanwhile, the snapshot shows that one.
func (uc *implUseCase) Upload(ctx context.Context, input dashboard.UploadInput) (dashboard.Snapshot, error) {
	ctx, b, err := uc.board(ctx, input.SessionID)
	if err != nil {
		return dashboard.Snapshot{}, err
	}

	if err := dashboard.ValidateFileName(input.FileName); err != nil {
		return dashboard.Snapshot{}, err
	}
	if input.Size == 0 {
		return dashboard.Snapshot{}, dashboard.ErrEmptyFile
	}

	tok := b.BeginUpload(input.FileName)
	uc.l.Infof(ctx, "attempt %d: uploading %s (%d bytes)", tok, input.FileName, input.Size)

	// Superseded calls are left to finish; a client hanging up does not
	// cancel them either.
	uc.runPipeline(context.WithoutCancel(ctx), b, tok, input)

	return b.Snapshot(), nil
}

func (uc *implUseCase) runPipeline(ctx context.Context, b *dashboard.Board, tok upload.Token, input dashboard.UploadInput) {
	res, callErr := uc.parser.Upload(ctx, input.FileName, input.Content)
	if callErr != nil {
		uc.l.Warnf(ctx, "attempt %d: parser.Upload: %v", tok, callErr)
	}

	handle, err := b.ApplyUpload(tok, res, callErr)
	if err != nil {
		uc.logDropped(ctx, tok, "upload", err)
		return
	}
	if handle == "" {
		if callErr == nil {
			uc.l.Infof(ctx, "attempt %d: upload returned no parsed file, nothing to report", tok)
		}
		return
	}

	report, callErr := uc.parser.GenerateReport(ctx, handle)
	if callErr != nil {
		uc.l.Warnf(ctx, "attempt %d: parser.GenerateReport: %v", tok, callErr)
	}

	if err := b.ApplyReport(tok, report, callErr); err != nil {
		uc.logDropped(ctx, tok, "report", err)
		return
	}

	if callErr == nil {
		uc.l.Infof(ctx, "attempt %d: report ready (%d upcoming, %d priority)",
			tok, len(report.UpcomingAssignments), len(report.ImportantDates))
	}
}
