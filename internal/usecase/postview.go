package usecase

import (
	"context"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
)

// buildPostViews attaches interaction counts and the viewer's has-liked
// status to a page of posts. One grouped counts call and at most one
// liked-set call per page, independent of page size.
func buildPostViews(ctx context.Context, interactions persistent.InteractionRepository, posts []*entity.Post, viewerID uint) ([]*entity.PostView, error) {
	views := make([]*entity.PostView, 0, len(posts))
	if len(posts) == 0 {
		return views, nil
	}

	postIDs := make([]uint, len(posts))
	for i, post := range posts {
		postIDs[i] = post.ID
	}

	counts, err := interactions.CountsForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	liked := map[uint]bool{}
	if viewerID != 0 {
		liked, err = interactions.ViewerLikedSet(ctx, viewerID, postIDs)
		if err != nil {
			return nil, err
		}
	}

	for _, post := range posts {
		c := counts[post.ID]
		views = append(views, &entity.PostView{
			Post:           *post,
			LikeCount:      c.LikeCount,
			CommentCount:   c.CommentCount,
			ViewerHasLiked: liked[post.ID],
		})
	}
	return views, nil
}
