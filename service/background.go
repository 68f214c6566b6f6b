package service

import "fmt"

// background runs fn in a goroutine tracked by the shared WaitGroup, so that
// shutdown can wait for it. Panics inside fn are logged instead of crashing
// the process.
func (s *service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.logger.PrintError(fmt.Errorf("%s", err), nil)
			}
		}()
		fn()
	}()
}
