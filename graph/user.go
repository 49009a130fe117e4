package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/Markosdlpz02/Practica5/models"
)

// UserResolver resolves User fields. Relationship fields run their own
// store lookup when selected; nothing is cached or batched.
type UserResolver struct {
	root *Resolver
	user *models.User
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID.Hex())
}

func (r *UserResolver) Name() string {
	return r.user.Name
}

func (r *UserResolver) Email() string {
	return r.user.Email
}

// Password exposes the stored bcrypt digest.
func (r *UserResolver) Password() string {
	return r.user.Password
}

func (r *UserResolver) Posts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := r.root.PostStore.GetPostsByAuthor(ctx, r.user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return wrapPosts(r.root, posts), nil
}

func (r *UserResolver) Comments(ctx context.Context) ([]*CommentResolver, error) {
	comments, err := r.root.CommentStore.GetCommentsByAuthor(ctx, r.user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return wrapComments(r.root, comments), nil
}

func (r *UserResolver) LikedPosts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := r.root.PostStore.GetPostsLikedBy(ctx, r.user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return wrapPosts(r.root, posts), nil
}

func wrapUsers(root *Resolver, users []*models.User) []*UserResolver {
	resolvers := make([]*UserResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &UserResolver{root: root, user: u})
	}
	return resolvers
}
