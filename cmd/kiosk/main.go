package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"arc-checkin/internal/checkin"
	"arc-checkin/internal/kiosk"
)

// Terminal kiosk for counters without a browser. Same three states as the
// web kiosk: search, confirm, success.
func main() {
	baseURL := flag.String("server", "http://localhost:8443", "check-in server base URL")
	flag.Parse()

	client := kiosk.NewClient(*baseURL)
	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Println("=== 課程報到 ===")
	for {
		fmt.Print("\n請輸入手機號碼（直接按 Enter 離開）: ")
		if !in.Scan() {
			return
		}
		phone := strings.TrimSpace(in.Text())
		if phone == "" {
			return
		}

		res, err := client.Query(ctx, phone)
		if err != nil {
			log.Printf("[ERROR] 連線錯誤，請稍後再試: %v", err)
			continue
		}
		if !res.Success {
			fmt.Println(res.Message)
			continue
		}

		user := res.Data
		fmt.Printf("\n學員編號: %s\n姓名:     %s\n課程:     %s（%s）\n日期:     %s\n",
			user.ID, user.Name, user.CourseName, user.CourseType, user.CourseDate)

		if user.Status == checkin.StatusCheckedIn {
			fmt.Println("您已完成報到，以上是您的報到資料。")
			continue
		}

		fmt.Print("確認報到？(y/N): ")
		if !in.Scan() {
			return
		}
		if !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
			continue
		}

		res, err = client.CheckIn(ctx, user.ID)
		if err != nil {
			log.Printf("[ERROR] 連線錯誤，請稍後再試: %v", err)
			continue
		}
		switch {
		case res.Success:
			fmt.Printf("報到完成，時間：%s\n", res.Timestamp)
		case res.Code == checkin.ErrCodeAlreadyCheckedIn:
			// goal already satisfied, treat as done
			fmt.Println("狀態：已完成報到")
		default:
			fmt.Println(res.Message)
		}
	}
}
