package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerlink/go-consent-report/internal/common"
	"github.com/ledgerlink/go-consent-report/internal/models"
)

func TestConsentService_Onboard(t *testing.T) {
	testHelper := serviceTestHelper(t)

	type args struct {
		ctx context.Context
		req models.OnboardConsentIn
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		want    *models.OnboardConsentOut
		wantErr bool
	}{
		{
			name: "test success",
			args: args{
				ctx: context.Background(),
				req: models.OnboardConsentIn{Name: "my-company"},
			},
			doMock: func(args args) {
				testHelper.mockGateway.EXPECT().CreateConsent(args.ctx, "my-company").Return("consent-123", nil)
				testHelper.mockConsentRepository.EXPECT().Create(args.ctx, &models.CreateConsentIn{
					ConsentID: "consent-123",
					Name:      "my-company",
					Status:    models.ConsentStatusPending,
				}).Return(&models.Consent{}, nil)
				testHelper.mockGateway.EXPECT().GenerateOTC(args.ctx, "consent-123").Return("a1b2==", nil)
			},
			want: &models.OnboardConsentOut{
				ConsentID:     "consent-123",
				OnboardingURL: "https://onboarding.upstream.test/consent/consent-123/?otc=a1b2%3D%3D",
			},
			wantErr: false,
		},
		{
			name: "empty name gets a generated one",
			args: args{
				ctx: context.Background(),
				req: models.OnboardConsentIn{},
			},
			doMock: func(args args) {
				testHelper.mockGateway.EXPECT().CreateConsent(args.ctx, gomock.Not("")).Return("consent-456", nil)
				testHelper.mockConsentRepository.EXPECT().Create(args.ctx, gomock.Any()).Return(&models.Consent{}, nil)
				testHelper.mockGateway.EXPECT().GenerateOTC(args.ctx, "consent-456").Return("code", nil)
			},
			want: &models.OnboardConsentOut{
				ConsentID:     "consent-456",
				OnboardingURL: "https://onboarding.upstream.test/consent/consent-456/?otc=code",
			},
			wantErr: false,
		},
		{
			name: "store failure does not fail onboarding",
			args: args{
				ctx: context.Background(),
				req: models.OnboardConsentIn{Name: "my-company"},
			},
			doMock: func(args args) {
				testHelper.mockGateway.EXPECT().CreateConsent(args.ctx, "my-company").Return("consent-123", nil)
				testHelper.mockConsentRepository.EXPECT().Create(args.ctx, gomock.Any()).Return(nil, assert.AnError)
				testHelper.mockGateway.EXPECT().GenerateOTC(args.ctx, "consent-123").Return("code", nil)
			},
			want: &models.OnboardConsentOut{
				ConsentID:     "consent-123",
				OnboardingURL: "https://onboarding.upstream.test/consent/consent-123/?otc=code",
			},
			wantErr: false,
		},
		{
			name: "upstream creation fails, nothing else happens",
			args: args{
				ctx: context.Background(),
				req: models.OnboardConsentIn{Name: "my-company"},
			},
			doMock: func(args args) {
				testHelper.mockGateway.EXPECT().CreateConsent(args.ctx, "my-company").Return("", assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "otc generation fails",
			args: args{
				ctx: context.Background(),
				req: models.OnboardConsentIn{Name: "my-company"},
			},
			doMock: func(args args) {
				testHelper.mockGateway.EXPECT().CreateConsent(args.ctx, "my-company").Return("consent-123", nil)
				testHelper.mockConsentRepository.EXPECT().Create(args.ctx, gomock.Any()).Return(&models.Consent{}, nil)
				testHelper.mockGateway.EXPECT().GenerateOTC(args.ctx, "consent-123").Return("", assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			got, err := testHelper.consentService.Onboard(tt.args.ctx, tt.args.req)
			assert.Equal(t, tt.wantErr, err != nil)
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestConsentService_List(t *testing.T) {
	testHelper := serviceTestHelper(t)

	records := []models.Consent{
		{ID: 3, ConsentID: "consent-c", Name: "third"},
		{ID: 2, ConsentID: "consent-b", Name: "second"},
		{ID: 1, ConsentID: "consent-a", Name: "first"},
	}

	t.Run("all enrichments succeed", func(t *testing.T) {
		testHelper.mockConsentRepository.EXPECT().List(gomock.Any()).Return(&records, nil)
		for _, record := range records {
			testHelper.mockGateway.EXPECT().GetConsent(gomock.Any(), record.ConsentID).
				Return(&models.AggregatorConsent{ID: record.ConsentID, Status: 1, Source: "fortnox"}, nil, nil)
		}

		got, err := testHelper.consentService.List(context.Background())
		require.NoError(t, err)
		require.Len(t, *got, 3)

		for i, enriched := range *got {
			assert.Equal(t, records[i].ConsentID, enriched.ConsentID)
			require.NotNil(t, enriched.Source)
			assert.Equal(t, "fortnox", *enriched.Source)
			require.NotNil(t, enriched.UpstreamStatus)
			assert.Equal(t, 1, *enriched.UpstreamStatus)
		}
	})

	t.Run("one failed lookup leaves local fields only", func(t *testing.T) {
		testHelper.mockConsentRepository.EXPECT().List(gomock.Any()).Return(&records, nil)
		testHelper.mockGateway.EXPECT().GetConsent(gomock.Any(), "consent-c").
			Return(&models.AggregatorConsent{ID: "consent-c", Status: 1, Source: "fortnox"}, nil, nil)
		testHelper.mockGateway.EXPECT().GetConsent(gomock.Any(), "consent-b").
			Return(nil, nil, assert.AnError)
		testHelper.mockGateway.EXPECT().GetConsent(gomock.Any(), "consent-a").
			Return(&models.AggregatorConsent{ID: "consent-a", Status: 2, Source: "visma"}, nil, nil)

		got, err := testHelper.consentService.List(context.Background())
		require.NoError(t, err)
		require.Len(t, *got, 3)

		enriched := *got
		assert.NotNil(t, enriched[0].Source)
		assert.Nil(t, enriched[1].Source)
		assert.Nil(t, enriched[1].UpstreamStatus)
		assert.Equal(t, "consent-b", enriched[1].ConsentID)
		require.NotNil(t, enriched[2].UpstreamStatus)
		assert.Equal(t, 2, *enriched[2].UpstreamStatus)
	})

	t.Run("empty store", func(t *testing.T) {
		testHelper.mockConsentRepository.EXPECT().List(gomock.Any()).Return(&[]models.Consent{}, nil)

		got, err := testHelper.consentService.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, *got)
	})

	t.Run("repository error", func(t *testing.T) {
		testHelper.mockConsentRepository.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		_, err := testHelper.consentService.List(context.Background())
		assert.ErrorIs(t, err, common.ErrInternalServerError)
	})
}

func TestConsentService_Get(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("passes the upstream document through", func(t *testing.T) {
		raw := []byte(`{"id":"consent-123","status":1}`)
		testHelper.mockGateway.EXPECT().GetConsent(gomock.Any(), "consent-123").
			Return(&models.AggregatorConsent{ID: "consent-123"}, raw, nil)

		got, err := testHelper.consentService.Get(context.Background(), "consent-123")
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	})

	t.Run("upstream error", func(t *testing.T) {
		testHelper.mockGateway.EXPECT().GetConsent(gomock.Any(), "consent-404").
			Return(nil, nil, assert.AnError)

		_, err := testHelper.consentService.Get(context.Background(), "consent-404")
		assert.Error(t, err)
	})
}
