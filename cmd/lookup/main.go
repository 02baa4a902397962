// Command lookup submits a Japanese sentence to the lookup API and prints
// its words, optionally with the dictionary entries of one selected word.
//
// Usage:
//
//	lookup --query=とても良かったです。 --select=1
//
// The endpoint defaults to LOOKUP_URL, then http://localhost:3000/api/lookup.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"yomu/internal/disambig"
	"yomu/internal/gateway"
	"yomu/internal/models"
	"yomu/internal/selection"
	"yomu/internal/validation"
)

func main() {
	defaultURL := os.Getenv("LOOKUP_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3000/api/lookup"
	}

	query := flag.String("query", "", "sentence to look up")
	index := flag.Int("select", selection.Unselected, "index of the word to show entries for")
	url := flag.String("url", defaultURL, "lookup endpoint")
	timeout := flag.Duration("timeout", gateway.DefaultTimeout, "request timeout")
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "Usage: lookup --query=<sentence> [--select=<index>] [--url=<endpoint>]")
		os.Exit(1)
	}
	if ok, msg := validation.ValidateURL(*url); !ok {
		log.Fatalf("invalid url: %s", msg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := gateway.NewClient(*url, *timeout, nil)
	sess := selection.NewSession(uuid.NewString())

	if err := sess.Lookup(ctx, client, *query); err != nil {
		var perr *gateway.ProtocolError
		if errors.As(err, &perr) {
			log.Fatalf("lookup rejected (%d): %s", perr.StatusCode, perr.Body)
		}
		log.Fatalf("lookup: %v", err)
	}

	printSentence(os.Stdout, sess.Sentence())

	if *index == selection.Unselected {
		return
	}
	if err := sess.SelectWord(*index); err != nil {
		log.Fatalf("select: %v", err)
	}
	word, _ := sess.SelectedWord()
	printWord(os.Stdout, disambig.NewResolver(nil), word)
}

func printSentence(w io.Writer, sentence models.Sentence) {
	for i, word := range sentence {
		fmt.Fprintf(w, "%2d  %s\n", i, word.Surface)
	}
}

func printWord(w io.Writer, resolver *disambig.Resolver, word models.Word) {
	fmt.Fprintf(w, "\n%s\n", word.Surface)
	for _, tok := range word.Tokens {
		res := resolver.Resolve(tok)
		fmt.Fprintf(w, "  %s (%s) [%s]\n", tok.Surface, tok.Base, res.POSLabel)
		if len(res.Entries) == 0 {
			fmt.Fprintln(w, "    no entries")
			continue
		}
		for _, e := range res.Entries {
			fmt.Fprintf(w, "    %s 【%s】\n", e.Headword(), strings.Join(e.Readings, "、"))
			for i, m := range e.Meanings {
				fmt.Fprintf(w, "      %d. %s\n", i+1, m.Gloss)
			}
		}
	}
}
