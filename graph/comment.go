package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/Markosdlpz02/Practica5/models"
)

type CommentResolver struct {
	root    *Resolver
	comment *models.Comment
}

func (r *CommentResolver) ID() graphql.ID {
	return graphql.ID(r.comment.ID.Hex())
}

func (r *CommentResolver) Text() string {
	return r.comment.Text
}

func (r *CommentResolver) Author(ctx context.Context) (*UserResolver, error) {
	u, err := r.root.UserStore.GetUserByID(ctx, r.comment.Author.Hex())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return &UserResolver{root: r.root, user: u}, nil
}

func (r *CommentResolver) Post(ctx context.Context) (*PostResolver, error) {
	p, err := r.root.PostStore.GetPostByID(ctx, r.comment.Post.Hex())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PostResolver{root: r.root, post: p}, nil
}

func wrapComments(root *Resolver, comments []*models.Comment) []*CommentResolver {
	resolvers := make([]*CommentResolver, 0, len(comments))
	for _, c := range comments {
		resolvers = append(resolvers, &CommentResolver{root: root, comment: c})
	}
	return resolvers
}
