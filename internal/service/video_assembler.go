package service

import (
	"Vidstream/internal/api/dto"
	"Vidstream/internal/model"
	"Vidstream/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildVideoDTOs 装配视频列表并批量带出作者信息
func buildVideoDTOs(ctx context.Context, userRepo repository.UserRepo, videos []*model.Video) ([]*dto.VideoDTO, error) {
	if len(videos) == 0 {
		return []*dto.VideoDTO{}, nil
	}

	authorIDSet := make(map[primitive.ObjectID]struct{}, len(videos))
	authorIDs := make([]primitive.ObjectID, 0, len(videos))
	for _, video := range videos {
		if _, ok := authorIDSet[video.UserID]; !ok {
			authorIDSet[video.UserID] = struct{}{}
			authorIDs = append(authorIDs, video.UserID)
		}
	}
	authors, err := userRepo.GetUserByIds(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	authorMap := make(map[primitive.ObjectID]*model.User, len(authors))
	for _, author := range authors {
		authorMap[author.ID] = author
	}

	videoDTOs := make([]*dto.VideoDTO, 0, len(videos))
	for _, video := range videos {
		videoDTO := &dto.VideoDTO{}
		if err = copier.Copy(videoDTO, video); err != nil {
			return nil, err
		}
		videoDTO.ID = video.ID.Hex()
		if author, ok := authorMap[video.UserID]; ok {
			videoDTO.User = &dto.VideoAuthorDTO{
				ID:       author.ID.Hex(),
				Username: author.Username,
				Avatar:   author.Avatar,
			}
		}
		videoDTOs = append(videoDTOs, videoDTO)
	}
	return videoDTOs, nil
}
