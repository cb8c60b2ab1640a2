package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt fragment showing who is signed in.
func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.IsAuthenticated() && snap.User != nil {
		return fmt.Sprintf("(%s) ", snap.User.Name)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Shopfront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
