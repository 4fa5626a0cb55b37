package pcf

// DemoSource multiplies 7 by 20 with two nested rec definitions: mult
// accumulates by repeated sum, and sum adds by moving one unit at a time.
const DemoSource = `(fn x =>
    fn y =>
        (rec mult =>
            fn x =>
                fn y =>
                    fn accum =>
                        if (iszero x)
                            then accum
                            else mult
                                    (pred x)
                                    y
                                    ((rec sum => fn x => fn y => if (iszero x) then y else sum (pred x) (succ y)) y accum)) x y 0
) 7 20`
