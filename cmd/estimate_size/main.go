package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/td0m/taskline/pkg/persist"
	"github.com/td0m/taskline/pkg/task"
)

var (
	years  = flag.Int("years", 10, "years of tasks to generate")
	perDay = flag.Int("per-day", 30, "tasks per day")
)

func main() {
	flag.Parse()
	total := 365 * *perDay * *years
	file := filepath.Join(os.TempDir(), "taskline-estimate.txt")
	defer os.Remove(file)

	l := generate(total, time.Now())
	p := persist.InFile(file)

	writeTime := measureTime(func() {
		check(p.Write(l))
	})

	var read *task.List
	readTime := measureTime(func() {
		var err error
		read, err = p.Read()
		check(err)
	})
	if !read.Equal(l) {
		panic("read list differs from written list")
	}

	info, err := os.Stat(file)
	check(err)
	fmt.Printf("Tasks: %d years, %d per day (%d total)\n", *years, *perDay, total)
	fmt.Printf("File size: %dKB\n", info.Size()/1024)
	fmt.Printf("Write time: %dms\n", writeTime.Milliseconds())
	fmt.Printf("Read time: %dms\n", readTime.Milliseconds())
}

// generate builds n tasks spread evenly over the three kinds.
func generate(n int, start time.Time) *task.List {
	start = start.Truncate(time.Minute)
	l := task.NewList()
	for i := 0; i < n; i++ {
		var (
			t   task.Task
			err error
		)
		desc := randomString(10)
		when := start.Add(time.Duration(i) * time.Hour)
		switch i % 3 {
		case 0:
			t, err = task.NewTodo(desc)
		case 1:
			t, err = task.NewDeadline(desc, when)
		default:
			t, err = task.NewEvent(desc, when)
		}
		check(err)
		if rand.Intn(2) == 0 {
			t.MarkAsDone()
		}
		l.Add(t)
	}
	return l
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func measureTime(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomString(l int) string {
	b := make([]byte, l)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
