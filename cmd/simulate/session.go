package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"inmo-assistant/internal/model"
)

type answerer interface {
	Answer(ctx context.Context, utterance string) (*model.Reply, error)
}

// runSession reads utterances line by line until EOF or "q"
func runSession(ctx context.Context, in io.Reader, out io.Writer, assistant answerer, timeout time.Duration) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Escribe tu mensaje (q para salir):")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "q") {
			break
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		reply, err := assistant.Answer(callCtx, text)
		cancel()
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		printReply(out, reply)
	}

	fmt.Fprintln(out, "\nFin de la simulación.")
	return scanner.Err()
}

func printReply(out io.Writer, reply *model.Reply) {
	if plan, err := json.Marshal(reply.Plan); err == nil {
		fmt.Fprintf(out, "Plan: %s\n", plan)
	}

	switch reply.Kind {
	case model.ReplyListings, model.ReplyListing:
		for i := range reply.Listings {
			printListing(out, &reply.Listings[i])
		}
	case model.ReplyPhotos:
		for i, url := range reply.Photos {
			fmt.Fprintf(out, "[imagen %d] %s\n", i+1, url)
		}
	case model.ReplyNoResults:
		fmt.Fprintln(out, "Sin resultados.")
	case model.ReplyNotFound:
		fmt.Fprintln(out, "No se encontró la referencia solicitada.")
	case model.ReplyClarification:
		fmt.Fprintf(out, "Faltan datos: %s\n", strings.Join(reply.Questions, " | "))
	default:
		fmt.Fprintf(out, "Intent %s no implementado en el simulador.\n", reply.Plan.Intent)
	}
}

func printListing(out io.Writer, p *model.Property) {
	if p.PrimaryImageURL != nil {
		fmt.Fprintf(out, "[imagen] %s\n", *p.PrimaryImageURL)
	} else {
		fmt.Fprintln(out, "[sin imagen]")
	}

	parts := []string{p.ListingID}
	if p.Title != nil {
		parts = append(parts, *p.Title)
	}
	if p.Price != nil {
		parts = append(parts, strconv.FormatFloat(*p.Price, 'f', -1, 64)+" €")
	}
	if p.AreaM2 != nil {
		parts = append(parts, strconv.FormatFloat(*p.AreaM2, 'f', -1, 64)+" m²")
	}
	var place []string
	if p.Neighborhood != nil {
		place = append(place, *p.Neighborhood)
	}
	if p.Municipality != nil {
		place = append(place, *p.Municipality)
	}
	if len(place) > 0 {
		parts = append(parts, strings.Join(place, ", "))
	}
	fmt.Fprintln(out, strings.Join(parts, " · "))

	if p.PhotoCount != nil && *p.PhotoCount > 1 {
		fmt.Fprintf(out, "(+%d fotos adicionales)\n", *p.PhotoCount-1)
	}
}
