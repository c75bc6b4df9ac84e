package main

import (
	"log"
	"os"

	"github.com/sjaensch/guards/guard"
	"github.com/sjaensch/guards/indent"
	"go.uber.org/zap"
)

const fileName = "hello.txt"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := writeDeferred(); err != nil {
		log.Fatal(err)
	}
	if err := writeExplicit(); err != nil {
		log.Fatal(err)
	}
	if err := writeManaged(logger); err != nil {
		log.Fatal(err)
	}
	err = guard.WithFile(fileName, func(f *os.File) error {
		if _, err := f.WriteString("Hello World!"); err != nil {
			return err
		}
		_, err := f.WriteString("bye")
		return err
	}, guard.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s four ways", fileName)

	in := indent.New(os.Stdout)
	in.Do(func(int) {
		in.Print("hi")
		in.Do(func(int) {
			in.Print("hello")
		})
	})
}

// writeDeferred is the plain form: close is deferred right after a
// successful open.
func writeDeferred() error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString("Hello World!")
	return err
}

// writeExplicit spells out the cleanup a deferred close performs.
func writeExplicit() (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.WriteString("Hello World!")
	return err
}

func writeManaged(logger *zap.Logger) error {
	mf := guard.NewManagedFile(fileName, guard.WithLogger(logger))
	f, err := mf.Enter()
	if err != nil {
		return err
	}
	defer mf.Exit()

	if _, err := f.WriteString("Hello World!"); err != nil {
		return err
	}
	_, err = f.WriteString("bye")
	return err
}
