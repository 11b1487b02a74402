package es

import (
	"context"
	"errors"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type VideoRepo interface {
	IndexVideo(ctx context.Context, video *VideoES) error
	DeleteVideo(ctx context.Context, id string) error
	SearchVideos(ctx context.Context, keyword string, from, size int) ([]*VideoES, int64, error)
}

type VideoRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewVideoRepo(client *elasticsearch.TypedClient) VideoRepo {
	return &VideoRepoImpl{client: client}
}

func (s *VideoRepoImpl) IndexVideo(ctx context.Context, video *VideoES) error {
	_, err := s.client.Index(VideoIndex).
		Id(video.ID).
		Document(video).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *VideoRepoImpl) DeleteVideo(ctx context.Context, id string) error {
	_, err := s.client.Delete(VideoIndex, id).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

// SearchVideos 按关键词检索视频，相关度优先，同分按发布时间倒序
func (s *VideoRepoImpl) SearchVideos(ctx context.Context, keyword string, from, size int) ([]*VideoES, int64, error) {
	if from >= MaxSearchDepth {
		return []*VideoES{}, 0, nil
	}

	req := s.client.Search().
		Index(VideoIndex).
		Query(&types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:  keyword,
				Fields: []string{"title^2", "description"},
			},
		}).
		Sort(
			types.SortOptions{SortOptions: map[string]types.FieldSort{
				"_score": {Order: &sortorder.Desc},
			}},
			types.SortOptions{SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortorder.Desc},
			}},
		).
		From(from).
		Size(size)

	resp, err := req.Do(ctx)
	if err != nil {
		return nil, 0, err
	}

	results := make([]*VideoES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var video VideoES
		if err = json.Unmarshal(hit.Source_, &video); err != nil {
			continue
		}
		results = append(results, &video)
	}

	var total int64
	if resp.Hits.Total != nil {
		total = resp.Hits.Total.Value
	}
	return results, total, nil
}
