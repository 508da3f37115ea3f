package constants

// values of |f'(x)| or |f(x1)-f(x0)| below the floor stop the iteration
const DegenerateFloor float64 = 1e-12

const DefaultTolerance float64 = 1e-6
const DefaultMaxIterations int = 100
