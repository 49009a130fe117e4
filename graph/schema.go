package graph

// Schema is the GraphQL contract served on /query.
const Schema = `
	type Query {
		users: [User!]!
		user(id: ID!): User
		posts: [Post!]!
		post(id: ID!): Post
		comments: [Comment!]!
		comment(id: ID!): Comment
	}

	type Mutation {
		createUser(name: String!, email: String!, password: String!): User!
		updateUser(id: ID!, input: UpdateUserInput!): User
		deleteUser(id: ID!): Boolean!

		createPost(content: String!, authorId: ID!): Post!
		updatePost(id: ID!, input: UpdatePostInput!): Post
		deletePost(id: ID!): Boolean!
		addLikeToPost(postId: ID!, userId: ID!): Post!
		removeLikeFromPost(postId: ID!, userId: ID!): Post!

		createComment(text: String!, authorId: ID!, postId: ID!): Comment!
		updateComment(id: ID!, input: UpdateCommentInput!): Comment
		deleteComment(id: ID!): Boolean!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		password: String!
		posts: [Post!]!
		comments: [Comment!]!
		likedPosts: [Post!]!
	}

	type Post {
		id: ID!
		content: String!
		author: User
		comments: [Comment!]!
		likes: [User!]!
	}

	type Comment {
		id: ID!
		text: String!
		author: User
		post: Post
	}

	input UpdateUserInput {
		name: String
		email: String
		password: String
	}

	input UpdatePostInput {
		content: String
	}

	input UpdateCommentInput {
		text: String
	}
`
