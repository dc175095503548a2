package fetch_articles_usecase

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"reader/mocks"
	"reader/usecase/testutil"
)

func TestFetchArticlesUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockArticleCachePort(ctrl)

	tests := []struct {
		name      string
		region    string
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name:   "success",
			region: "us",
			setupMock: func() {
				mockCache.EXPECT().FetchArticles(gomock.Any(), "us").Return(testutil.CreateMockArticles(), nil)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name:   "cache error",
			region: "us",
			setupMock: func() {
				mockCache.EXPECT().FetchArticles(gomock.Any(), "us").Return(nil, testutil.ErrMockNetwork)
			},
			wantErr: true,
		},
		{
			name:      "empty region",
			region:    "  ",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			u := NewFetchArticlesUsecase(mockCache)
			got, err := u.Execute(context.Background(), tt.region)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("Execute() returned %d articles, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestFetchArticlesUsecase_ExecuteCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockArticleCachePort(ctrl)
	mockCache.EXPECT().FetchCachedArticles(gomock.Any()).Return(testutil.CreateMockArticles(), nil)

	u := NewFetchArticlesUsecase(mockCache)
	got, err := u.ExecuteCached(context.Background())
	if err != nil {
		t.Errorf("ExecuteCached() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ExecuteCached() returned %d articles, want 2", len(got))
	}
}

func TestFetchArticlesUsecase_ExecuteCached_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockArticleCachePort(ctrl)
	mockCache.EXPECT().FetchCachedArticles(gomock.Any()).Return(nil, testutil.ErrMockStore)

	u := NewFetchArticlesUsecase(mockCache)
	if _, err := u.ExecuteCached(context.Background()); err == nil {
		t.Error("ExecuteCached() expected error, got nil")
	}
}
