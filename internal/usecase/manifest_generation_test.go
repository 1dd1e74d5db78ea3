package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-manifest/internal/domain"
	"invoice-manifest/internal/usecase"
	mock_usecase "invoice-manifest/internal/usecase/mocks"
)

func TestManifestGenerationUseCase_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	pdfs := []string{"invoice_INV-2025-0001.pdf", "invoice_INV-2025-0002.pdf"}

	tests := []struct {
		name    string
		setup   func(docs *mock_usecase.MockDocumentRepository)
		want    *domain.DocumentManifest
		wantErr error
	}{
		{
			name: "writes manifest for found documents",
			setup: func(docs *mock_usecase.MockDocumentRepository) {
				want := domain.DocumentManifest{
					OutputDir:   "invoices",
					NumExpected: 2,
					NumCreated:  2,
					PDFFiles:    pdfs,
					Manifest:    "manifest_pdfs.json",
				}
				docs.EXPECT().ListInvoiceDocuments(gomock.Any(), "data/invoices").Return(pdfs, nil)
				docs.EXPECT().SaveDocumentManifest(gomock.Any(), "data/invoices/manifest_pdfs.json", want).Return(nil)
			},
			want: &domain.DocumentManifest{
				OutputDir:   "invoices",
				NumExpected: 2,
				NumCreated:  2,
				PDFFiles:    pdfs,
				Manifest:    "manifest_pdfs.json",
			},
		},
		{
			name: "no documents",
			setup: func(docs *mock_usecase.MockDocumentRepository) {
				docs.EXPECT().ListInvoiceDocuments(gomock.Any(), "data/invoices").Return([]string{}, nil)
			},
			wantErr: usecase.ErrNoDocuments,
		},
		{
			name: "save fails",
			setup: func(docs *mock_usecase.MockDocumentRepository) {
				docs.EXPECT().ListInvoiceDocuments(gomock.Any(), "data/invoices").Return(pdfs, nil)
				docs.EXPECT().SaveDocumentManifest(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.IOError("failed to write document manifest", errors.New("read-only file system")))
			},
			wantErr: &domain.DomainError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := mock_usecase.NewMockDocumentRepository(ctrl)
			tt.setup(docs)

			uc := usecase.NewManifestGenerationUseCase(docs, zerolog.Nop())
			got, err := uc.Generate(ctx, "data/invoices", "data/invoices/manifest_pdfs.json")

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)
				if errors.Is(tt.wantErr, usecase.ErrNoDocuments) {
					assert.ErrorIs(t, err, usecase.ErrNoDocuments)
				} else {
					assert.True(t, domain.IsInputError(err))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
