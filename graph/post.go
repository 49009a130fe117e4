package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/Markosdlpz02/Practica5/models"
)

type PostResolver struct {
	root *Resolver
	post *models.Post
}

func (r *PostResolver) ID() graphql.ID {
	return graphql.ID(r.post.ID.Hex())
}

func (r *PostResolver) Content() string {
	return r.post.Content
}

// Author is nullable: deleting a user leaves their posts dangling.
func (r *PostResolver) Author(ctx context.Context) (*UserResolver, error) {
	u, err := r.root.UserStore.GetUserByID(ctx, r.post.Author.Hex())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return &UserResolver{root: r.root, user: u}, nil
}

func (r *PostResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := r.root.CommentStore.GetCommentsByIDs(ctx, hexIDs(r.post.Comments))
	if err != nil {
		return nil, err
	}
	return wrapComments(r.root, comments), nil
}

func (r *PostResolver) Likes(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.root.UserStore.GetUsersByIDs(ctx, hexIDs(r.post.Likes))
	if err != nil {
		return nil, err
	}
	return wrapUsers(r.root, users), nil
}

func wrapPosts(root *Resolver, posts []*models.Post) []*PostResolver {
	resolvers := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		resolvers = append(resolvers, &PostResolver{root: root, post: p})
	}
	return resolvers
}
