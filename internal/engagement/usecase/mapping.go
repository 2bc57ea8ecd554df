package usecase

import (
	"github.com/sumitdoescode/Clicks/internal/post"
	postmodels "github.com/sumitdoescode/Clicks/internal/post/model"
	"github.com/sumitdoescode/Clicks/internal/user"
)

func toPostDTOs(posts []postmodels.Post) []post.PostDTO {
	dtos := make([]post.PostDTO, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		dto := post.PostDTO{
			ID:            p.ID,
			Caption:       p.Caption,
			Image:         p.Image,
			LikesCount:    p.LikesCount,
			CommentsCount: p.CommentsCount,
			IsLiked:       p.IsLiked,
			IsBookmarked:  p.IsBookmarked,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		}
		if p.User != nil {
			dto.User = user.UserCardDTO{
				ID:       p.User.ID,
				Name:     p.User.Name,
				Username: p.User.Username,
				Image:    p.User.Image,
			}
		}
		dtos = append(dtos, dto)
	}
	return dtos
}
