package service

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/model"
	"Vidstream/internal/pkg/es"
	"Vidstream/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VideoService interface {
	CreateVideo(ctx context.Context, userID primitive.ObjectID, createDTO *dto.CreateVideoDTO) (*dto.VideoDTO, error)
	GetVideo(ctx context.Context, videoID primitive.ObjectID, viewerID *primitive.ObjectID) (*dto.VideoDTO, error)
	UpdateVideo(ctx context.Context, userID, videoID primitive.ObjectID, updateDTO *dto.UpdateVideoDTO) (*dto.VideoDTO, error)
	DeleteVideo(ctx context.Context, userID, videoID primitive.ObjectID) error
	ListVideos(ctx context.Context, pageNum, pageSize int64) (*dto.VideoListDTO, error)
	ListUserVideos(ctx context.Context, channelID primitive.ObjectID, pageNum, pageSize int64) (*dto.VideoListDTO, error)
	ListFeedVideos(ctx context.Context, userID primitive.ObjectID, pageNum, pageSize int64) (*dto.VideoListDTO, error)
	ListLikedVideos(ctx context.Context, userID primitive.ObjectID, pageNum, pageSize int64) (*dto.VideoListDTO, error)
	SearchVideos(ctx context.Context, keyword string, pageNum, pageSize int64) (*dto.VideoListDTO, error)
}

type VideoServiceImpl struct {
	videoRepo repository.VideoRepo
	userRepo  repository.UserRepo
	subRepo   repository.SubscriptionRepo
	likeRepo  repository.VideoLikeRepo
	cmtRepo   repository.CommentRepo
	esRepo    es.VideoRepo
}

func NewVideoService(
	videoRepo repository.VideoRepo,
	userRepo repository.UserRepo,
	subRepo repository.SubscriptionRepo,
	likeRepo repository.VideoLikeRepo,
	cmtRepo repository.CommentRepo,
	esRepo es.VideoRepo,
) VideoService {
	return &VideoServiceImpl{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		subRepo:   subRepo,
		likeRepo:  likeRepo,
		cmtRepo:   cmtRepo,
		esRepo:    esRepo,
	}
}

func (s *VideoServiceImpl) CreateVideo(ctx context.Context, userID primitive.ObjectID, createDTO *dto.CreateVideoDTO) (*dto.VideoDTO, error) {
	video := &model.Video{
		UserID:      userID,
		Title:       createDTO.Title,
		Description: createDTO.Description,
		VodVideoID:  createDTO.VodVideoID,
		Cover:       createDTO.Cover,
	}
	if err := s.videoRepo.CreateVideo(ctx, video); err != nil {
		return nil, err
	}
	s.indexVideo(ctx, video)

	videoDTOs, err := buildVideoDTOs(ctx, s.userRepo, []*model.Video{video})
	if err != nil {
		return nil, err
	}
	return videoDTOs[0], nil
}

// GetVideo 详情页附带作者订阅关系与访问者的表态状态
func (s *VideoServiceImpl) GetVideo(ctx context.Context, videoID primitive.ObjectID, viewerID *primitive.ObjectID) (*dto.VideoDTO, error) {
	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	videoDTOs, err := buildVideoDTOs(ctx, s.userRepo, []*model.Video{video})
	if err != nil {
		return nil, err
	}
	videoDTO := videoDTOs[0]

	if viewerID != nil {
		reaction, err := s.likeRepo.GetReaction(ctx, *viewerID, videoID)
		if err != nil {
			return nil, err
		}
		if reaction != nil {
			videoDTO.IsLiked = reaction.Like == model.PolarityLike
			videoDTO.IsDisliked = reaction.Like == model.PolarityDislike
		}
		if videoDTO.User != nil && *viewerID != video.UserID {
			sub, err := s.subRepo.GetSubscription(ctx, *viewerID, video.UserID)
			if err != nil {
				return nil, err
			}
			videoDTO.User.IsSubscribed = sub != nil
		}
	}
	return videoDTO, nil
}

func (s *VideoServiceImpl) UpdateVideo(ctx context.Context, userID, videoID primitive.ObjectID, updateDTO *dto.UpdateVideoDTO) (*dto.VideoDTO, error) {
	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	if video.UserID != userID {
		return nil, ErrNotOwner
	}

	if updateDTO.Title != nil {
		video.Title = *updateDTO.Title
	}
	if updateDTO.Description != nil {
		video.Description = *updateDTO.Description
	}
	if updateDTO.Cover != nil {
		video.Cover = *updateDTO.Cover
	}
	if err = s.videoRepo.UpdateVideo(ctx, video); err != nil {
		return nil, err
	}
	s.indexVideo(ctx, video)

	videoDTOs, err := buildVideoDTOs(ctx, s.userRepo, []*model.Video{video})
	if err != nil {
		return nil, err
	}
	return videoDTOs[0], nil
}

// DeleteVideo 连带清理表态、评论与搜索索引
func (s *VideoServiceImpl) DeleteVideo(ctx context.Context, userID, videoID primitive.ObjectID) error {
	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}
	if video.UserID != userID {
		return ErrNotOwner
	}

	if err = s.videoRepo.DeleteVideo(ctx, videoID); err != nil {
		return err
	}
	if err = s.likeRepo.DeleteByVideo(ctx, videoID); err != nil {
		log.ErrorContext(ctx, "delete video reactions error", "video_id", videoID.Hex(), "err", err)
	}
	if err = s.cmtRepo.DeleteByVideo(ctx, videoID); err != nil {
		log.ErrorContext(ctx, "delete video comments error", "video_id", videoID.Hex(), "err", err)
	}
	if err = s.esRepo.DeleteVideo(ctx, videoID.Hex()); err != nil {
		log.WarnContext(ctx, "delete video index error", "video_id", videoID.Hex(), "err", err)
	}
	return nil
}

func (s *VideoServiceImpl) ListVideos(ctx context.Context, pageNum, pageSize int64) (*dto.VideoListDTO, error) {
	videos, total, err := s.videoRepo.ListVideos(ctx, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildVideoList(ctx, videos, total)
}

func (s *VideoServiceImpl) ListUserVideos(ctx context.Context, channelID primitive.ObjectID, pageNum, pageSize int64) (*dto.VideoListDTO, error) {
	channel, err := s.userRepo.GetUserById(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, ErrUserNotFound
	}
	videos, total, err := s.videoRepo.ListByUser(ctx, channelID, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildVideoList(ctx, videos, total)
}

// ListFeedVideos 返回订阅频道的最新视频
func (s *VideoServiceImpl) ListFeedVideos(ctx context.Context, userID primitive.ObjectID, pageNum, pageSize int64) (*dto.VideoListDTO, error) {
	channelIDs, err := s.subRepo.ListChannelIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	videos, total, err := s.videoRepo.ListByUsers(ctx, channelIDs, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	return s.buildVideoList(ctx, videos, total)
}

// ListLikedVideos 按点赞时间倒序返回用户点赞过的视频
func (s *VideoServiceImpl) ListLikedVideos(ctx context.Context, userID primitive.ObjectID, pageNum, pageSize int64) (*dto.VideoListDTO, error) {
	videoIDs, err := s.likeRepo.ListVideoIDsByUser(ctx, userID, model.PolarityLike, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.likeRepo.CountByUser(ctx, userID, model.PolarityLike)
	if err != nil {
		return nil, err
	}
	videos, err := s.videoRepo.GetVideosByIds(ctx, videoIDs)
	if err != nil {
		return nil, err
	}
	videos = sortVideosByIds(videos, videoIDs)
	return s.buildVideoList(ctx, videos, total)
}

// SearchVideos 相关度排序来自搜索索引，正文仍以库内数据为准
func (s *VideoServiceImpl) SearchVideos(ctx context.Context, keyword string, pageNum, pageSize int64) (*dto.VideoListDTO, error) {
	from := (pageNum - 1) * pageSize
	hits, total, err := s.esRepo.SearchVideos(ctx, keyword, int(from), int(pageSize))
	if err != nil {
		return nil, err
	}
	videoIDs := make([]primitive.ObjectID, 0, len(hits))
	for _, hit := range hits {
		id, err := primitive.ObjectIDFromHex(hit.ID)
		if err != nil {
			continue
		}
		videoIDs = append(videoIDs, id)
	}
	videos, err := s.videoRepo.GetVideosByIds(ctx, videoIDs)
	if err != nil {
		return nil, err
	}
	videos = sortVideosByIds(videos, videoIDs)
	return s.buildVideoList(ctx, videos, total)
}

func (s *VideoServiceImpl) buildVideoList(ctx context.Context, videos []*model.Video, total int64) (*dto.VideoListDTO, error) {
	videoDTOs, err := buildVideoDTOs(ctx, s.userRepo, videos)
	if err != nil {
		return nil, err
	}
	return &dto.VideoListDTO{
		Videos:      videoDTOs,
		VideosCount: total,
	}, nil
}

func (s *VideoServiceImpl) indexVideo(ctx context.Context, video *model.Video) {
	videoES := &es.VideoES{}
	if err := copier.Copy(videoES, video); err != nil {
		log.WarnContext(ctx, "build video index doc error", "video_id", video.ID.Hex(), "err", err)
		return
	}
	videoES.ID = video.ID.Hex()
	videoES.UserID = video.UserID.Hex()
	if err := s.esRepo.IndexVideo(ctx, videoES); err != nil {
		log.WarnContext(ctx, "index video error", "video_id", video.ID.Hex(), "err", err)
	}
}

// sortVideosByIds 按给定 ID 顺序重排查询结果
func sortVideosByIds(videos []*model.Video, ids []primitive.ObjectID) []*model.Video {
	videoMap := make(map[primitive.ObjectID]*model.Video, len(videos))
	for _, video := range videos {
		videoMap[video.ID] = video
	}
	sorted := make([]*model.Video, 0, len(videos))
	for _, id := range ids {
		if video, ok := videoMap[id]; ok {
			sorted = append(sorted, video)
		}
	}
	return sorted
}
