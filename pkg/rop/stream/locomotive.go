package stream

import "context"

// locomotive moves values from inputCh to outCh through engine until inputCh
// is closed or ctx is done. It owns outCh and closes it on return.
func locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(in In) Out) {
	defer close(outCh)

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case outCh <- engine(in):
			}
		}
	}
}
