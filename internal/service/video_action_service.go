package service

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/model"
	"Vidstream/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VideoActionService interface {
	SetReaction(ctx context.Context, userID, videoID primitive.ObjectID, polarity int8) (*dto.VideoDTO, error)
	CreateComment(ctx context.Context, userID, videoID primitive.ObjectID, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, videoID primitive.ObjectID, pageNum, pageSize int64) (*dto.CommentListDTO, error)
	DeleteComment(ctx context.Context, userID, videoID, commentID primitive.ObjectID) error
}

type VideoActionServiceImpl struct {
	videoRepo  repository.VideoRepo
	likeRepo   repository.VideoLikeRepo
	cmtRepo    repository.CommentRepo
	userRepo   repository.UserRepo
	counterSvc CounterService
	videoSvc   VideoService
}

func NewVideoActionService(
	videoRepo repository.VideoRepo,
	likeRepo repository.VideoLikeRepo,
	cmtRepo repository.CommentRepo,
	userRepo repository.UserRepo,
	counterSvc CounterService,
	videoSvc VideoService,
) VideoActionService {
	return &VideoActionServiceImpl{
		videoRepo:  videoRepo,
		likeRepo:   likeRepo,
		cmtRepo:    cmtRepo,
		userRepo:   userRepo,
		counterSvc: counterSvc,
		videoSvc:   videoSvc,
	}
}

// SetReaction 三态切换：无表态则新增，同极性则撤销，反极性则翻转
func (s *VideoActionServiceImpl) SetReaction(ctx context.Context, userID, videoID primitive.ObjectID, polarity int8) (*dto.VideoDTO, error) {
	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	reaction, err := s.likeRepo.GetReaction(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	switch {
	case reaction == nil:
		err = s.likeRepo.CreateReaction(ctx, &model.VideoLike{
			UserID:  userID,
			VideoID: videoID,
			Like:    polarity,
		})
	case reaction.Like == polarity:
		err = s.likeRepo.DeleteReaction(ctx, userID, videoID)
	default:
		err = s.likeRepo.UpdateReaction(ctx, userID, videoID, polarity)
	}
	if err != nil {
		return nil, err
	}
	s.counterSvc.SyncVideo(ctx, videoID)

	return s.videoSvc.GetVideo(ctx, videoID, &userID)
}

func (s *VideoActionServiceImpl) CreateComment(ctx context.Context, userID, videoID primitive.ObjectID, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	comment := &model.Comment{
		VideoID: videoID,
		UserID:  userID,
		Content: createDTO.Content,
	}
	if err = s.cmtRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	s.counterSvc.SyncVideo(ctx, videoID)

	author, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildCommentDTO(comment, author), nil
}

func (s *VideoActionServiceImpl) ListComments(ctx context.Context, videoID primitive.ObjectID, pageNum, pageSize int64) (*dto.CommentListDTO, error) {
	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	comments, total, err := s.cmtRepo.ListByVideo(ctx, videoID, pageNum, pageSize)
	if err != nil {
		return nil, err
	}

	authorIDSet := make(map[primitive.ObjectID]struct{}, len(comments))
	authorIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, comment := range comments {
		if _, ok := authorIDSet[comment.UserID]; !ok {
			authorIDSet[comment.UserID] = struct{}{}
			authorIDs = append(authorIDs, comment.UserID)
		}
	}
	authors, err := s.userRepo.GetUserByIds(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorMap := make(map[primitive.ObjectID]*model.User, len(authors))
	for _, author := range authors {
		authorMap[author.ID] = author
	}

	commentDTOs := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTOs = append(commentDTOs, buildCommentDTO(comment, authorMap[comment.UserID]))
	}
	return &dto.CommentListDTO{
		Comments:      commentDTOs,
		CommentsCount: total,
	}, nil
}

// DeleteComment 评论作者或视频作者均可删除
func (s *VideoActionServiceImpl) DeleteComment(ctx context.Context, userID, videoID, commentID primitive.ObjectID) error {
	video, err := s.videoRepo.GetVideoById(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}

	comment, err := s.cmtRepo.GetCommentById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.VideoID != videoID {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && video.UserID != userID {
		return ErrNotOwner
	}

	if err = s.cmtRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.counterSvc.SyncVideo(ctx, videoID)
	return nil
}

func buildCommentDTO(comment *model.Comment, author *model.User) *dto.CommentDTO {
	commentDTO := &dto.CommentDTO{
		ID:        comment.ID.Hex(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if author != nil {
		commentDTO.User = &dto.VideoAuthorDTO{
			ID:       author.ID.Hex(),
			Username: author.Username,
			Avatar:   author.Avatar,
		}
	}
	return commentDTO
}
