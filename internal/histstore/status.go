package histstore

import "fmt"

// PrintStoreStatus prints history store status information.
func PrintStoreStatus(status StoreStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	if status.Location != "" {
		fmt.Printf("Location: %s\n", status.Location)
	}
	fmt.Printf("Stored Sessions: %d\n", status.Sessions)
}

// PrintSessions prints one line per stored session, newest first.
func PrintSessions(records []SessionRecord) {
	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s  %s  leniency=%-7s  players=%-3d  pods=%-2d  benched=%d\n",
			rec.ID,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Leniency,
			rec.TotalPlayers,
			rec.PodsFormed,
			rec.UnassignedCount,
		)
	}
}
