package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/Markosdlpz02/Practica5/graph"
	"github.com/Markosdlpz02/Practica5/internal/comment"
	"github.com/Markosdlpz02/Practica5/internal/config"
	"github.com/Markosdlpz02/Practica5/internal/post"
	"github.com/Markosdlpz02/Practica5/internal/storage/memory"
	"github.com/Markosdlpz02/Practica5/internal/storage/mongo"
	"github.com/Markosdlpz02/Practica5/internal/user"
)

func main() {
	storageType := flag.String("storage", "memory", "storage backend: memory or mongo")
	flag.Parse()

	config.LoadEnv()

	var userStore user.UserStorage
	var postStore post.PostStorage
	var commentStore comment.CommentStorage

	switch *storageType {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mongo.InitDB(ctx); err != nil {
			cancel()
			log.Fatalf("failed to init database: %v", err)
		}
		cancel()

		log.Println("using MongoDB storage")
		userStore = mongo.NewUserMongoStorage()
		postStore = mongo.NewPostMongoStorage()
		commentStore = mongo.NewCommentMongoStorage()

	case "memory":
		log.Println("using in-memory storage")
		userStore = memory.NewUserMemoryStorage()
		postStore = memory.NewPostMemoryStorage()
		commentStore = memory.NewCommentMemoryStorage()

	default:
		log.Fatalf("unknown storage type: %s", *storageType)
	}

	resolver := &graph.Resolver{
		UserStore:    userStore,
		PostStore:    postStore,
		CommentStore: commentStore,
	}

	schema := graphql.MustParseSchema(graph.Schema, resolver)

	http.Handle("/query", &relay.Handler{Schema: schema})
	http.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(graphiqlPage)
	}))

	server := &http.Server{
		Addr: ":" + config.GetEnvDefault("PORT", "8080"),
	}

	go func() {
		log.Printf("server listening on http://localhost%s/", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("error during shutdown: %v", err)
	}

	if *storageType == "mongo" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongo.CloseDB(ctx); err != nil {
			log.Fatalf("error closing database: %v", err)
		}
	}

	log.Println("server stopped cleanly")
}

// graphiqlPage serves GraphiQL from CDN assets, pointed at /query.
var graphiqlPage = []byte(`<!DOCTYPE html>
<html>
	<head>
		<title>GraphiQL</title>
		<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.css" />
	</head>
	<body style="margin: 0;">
		<div id="graphiql" style="height: 100vh;"></div>
		<script src="https://cdn.jsdelivr.net/npm/react@18/umd/react.production.min.js"></script>
		<script src="https://cdn.jsdelivr.net/npm/react-dom@18/umd/react-dom.production.min.js"></script>
		<script src="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.js"></script>
		<script>
			const fetcher = GraphiQL.createFetcher({ url: '/query' });
			ReactDOM.createRoot(document.getElementById('graphiql')).render(
				React.createElement(GraphiQL, { fetcher: fetcher })
			);
		</script>
	</body>
</html>
`)
